package store

import (
	"time"

	"github.com/seifeddinerezgui/gethrought/internal/model"
)

// now is the clock for server-side timestamps, truncated to what a postgres timestamp keeps.
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func contactDefaults(c *model.Contact) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now()
	}
}

func newsletterDefaults(n *model.Newsletter) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now()
	}
}

func applicationDefaults(a *model.JobApplication) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now()
	}
	if a.Status == "" {
		a.Status = model.ApplicationStatusNew
	}
}

func userDefaults(u *model.User) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now()
	}
}
