// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuidv7 provides time-ordered unique identifiers for request and session ids.

Version 7 values sort by creation time, which keeps log lines and session keys
of one visit adjacent.
*/
package uuidv7

import "github.com/google/uuid"

// New returns a version 7 UUID string, falling back to version 4 when the
// time source cannot produce one.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Valid reports whether s parses as a UUID of any version.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
