package domain

import "errors"

// ErrFileNotFound is an error thrown when a file record is not found
var ErrFileNotFound = errors.New("file not found")

// ErrTagNotFound is an error thrown when a tag is not found
var ErrTagNotFound = errors.New("tag not found")

// ErrShareNotFound is an error thrown when a share is not found
var ErrShareNotFound = errors.New("share not found")

// ErrPrincipalNotFound is an error thrown when the target principal does not exist
var ErrPrincipalNotFound = errors.New("principal not found")

// ErrPermissionDenied is an error thrown when the caller is neither owner nor share holder
var ErrPermissionDenied = errors.New("permission denied")

// ErrShareAlreadyExists is an error thrown when an active share already covers the pair
var ErrShareAlreadyExists = errors.New("share already exists")

// ErrTagAlreadyExists is an error thrown when a tag name is taken for the owner
var ErrTagAlreadyExists = errors.New("tag already exists")

// ErrShareExpired is an error thrown when a share's time window has elapsed
var ErrShareExpired = errors.New("share expired")

// ErrShareExpiryRequired is an error thrown when a temporary share lacks an expiry
var ErrShareExpiryRequired = errors.New("temporary share requires expiry")

// ErrFileStillReferenced is an error thrown when permanent delete is gated by references
var ErrFileStillReferenced = errors.New("file still referenced")

// ErrInvalidCategory is an error thrown when the business category is not recognized
var ErrInvalidCategory = errors.New("invalid category")

// ErrInvalidHash is an error thrown when a content hash is not 64 hex characters
var ErrInvalidHash = errors.New("invalid content hash")

// ErrInvalidFilename is an error thrown when a file name is empty or malformed
var ErrInvalidFilename = errors.New("invalid filename")

// ErrInvalidTagName is an error thrown when a tag name is empty or too long
var ErrInvalidTagName = errors.New("invalid tag name")

// ErrFileSizeTooBig is an error thrown when the upload exceeds the size cap
var ErrFileSizeTooBig = errors.New("file size too big")

// ErrFileNotReady is an error thrown when the file is still uploading
var ErrFileNotReady = errors.New("file not ready")

// ErrFileUploadFailed is an error thrown when the file upload previously failed
var ErrFileUploadFailed = errors.New("file upload failed")

// ErrStorage is an error thrown when the object store call failed or timed out
var ErrStorage = errors.New("object storage error")
