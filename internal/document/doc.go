// Package document owns the lifecycle of the edited file: the buffer, an
// optional path, and the dirty flag. New, Open, and Save are transactional
// against the filestore collaborators, so a cancelled dialog or a failed
// read leaves the document exactly as it was.
package document
