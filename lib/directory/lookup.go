package directory

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// ResolveRecipient turns a share target into a channel or user ID. Targets
// prefixed with @ are matched against the member directory by display name,
// refreshing the directory once if the name is unknown. Anything else is
// passed through unchanged as a raw ID.
func (c *Client) ResolveRecipient(arg string) (string, error) {
	if !strings.HasPrefix(arg, "@") {
		logrus.WithField("target", arg).WithField("type", "channel_id").Debug("sending to raw id")
		return arg, nil
	}

	logrus.WithField("target", arg).WithField("type", "user").Debug("looking up user")
	name := strings.TrimPrefix(arg, "@")

	dir, err := c.GetDirectory(false)
	if err != nil {
		return "", err
	}

	entry, ok := dir.ByName()[name]
	if !ok {
		logrus.WithField("name", name).Debug("user not in directory, refreshing")
		dir, err = c.GetDirectory(true)
		if err != nil {
			return "", err
		}
		entry, ok = dir.ByName()[name]
	}

	if !ok {
		logrus.WithField("name", name).Debug("could not find user")
		return "", ErrUserNotFound
	}

	logrus.WithField("id", entry.ID).Debug("found user")
	return entry.ID, nil
}
