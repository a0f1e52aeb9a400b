package order

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrLinesAreRequired is the cause attached to an order without lines.
var ErrLinesAreRequired = errors.New("order items are required")

// Line references one unit of a menu item.
type Line struct {
	menuItemID kernel.ID
}

// NewLine validates the referenced id. Whether the item exists is checked by
// the use case against the catalog, not here.
func NewLine(menuItemID kernel.ID) (Line, error) {
	if err := menuItemID.Validate(); err != nil {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("items", err)
	}
	return Line{menuItemID: menuItemID}, nil
}

// NewLines builds lines for the given menu item ids, keeping their order and duplicates.
func NewLines(menuItemIDs []int64) ([]Line, error) {
	if len(menuItemIDs) == 0 {
		return nil, errs.NewValueIsRequiredErrorWithCause("items", ErrLinesAreRequired)
	}

	lines := make([]Line, 0, len(menuItemIDs))
	var err error
	for _, raw := range menuItemIDs {
		line, lineErr := NewLine(kernel.ID(raw))
		if lineErr != nil {
			err = errors.Join(err, lineErr)
			continue
		}
		lines = append(lines, line)
	}
	if err != nil {
		return nil, err
	}

	return lines, nil
}

func (l Line) MenuItemID() kernel.ID {
	return l.menuItemID
}
