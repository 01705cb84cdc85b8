//go:build !unix

package cas

import "io/fs"

func ownedByCurrentUser(fs.FileInfo) bool {
	return true
}
