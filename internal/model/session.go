package model

import "time"

// Session is the local record of the logged in user.
type Session struct {
	User User
	// APIURL is the remote store the user logged in against.
	APIURL     string
	LoggedInAt time.Time
}
