package services

import (
	"strings"

	db "meditrack/config/db"
)

// db helpers behind package-level variables so tests can substitute a fake
// store, the same way main_test.go substitutes startServer.
var (
	openCollections  = db.OpenCollections
	findOne          = db.FindOne
	createOne        = db.CreateOne
	findOneAndUpdate = db.FindOneAndUpdate
)

const maxCodeAttempts = 5

// isEmailDuplicate tells an email uniqueness violation apart from a collided
// generated identifier so only the former surfaces as a conflict.
func isEmailDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "email")
}
