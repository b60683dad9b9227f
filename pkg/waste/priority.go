package waste

import (
	"time"

	"github.com/dshills/cargostow/pkg/cargo"
)

// DisposalPriority scores an item for waste selection: higher values
// should be disposed of sooner. Combines how overdue the item is, how
// exhausted its uses are, and an inverse-priority term so low-priority
// items are preferred for disposal.
func DisposalPriority(item *cargo.Item, now time.Time) float64 {
	daysUntilExpiry := item.ExpiryDate.Sub(now).Hours() / 24

	overdue := -daysUntilExpiry
	if overdue < 0 {
		overdue = 0
	}

	usageLimit := item.UsageLimit
	if usageLimit < 1 {
		usageLimit = 1
	}
	usageFraction := float64(item.UsageCount) / float64(usageLimit)

	return overdue*5 + usageFraction*10 + float64(6-item.Priority)*20
}
