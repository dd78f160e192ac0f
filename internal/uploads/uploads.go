// Package uploads validates file attachments before they are accepted.
// Rejections carry the file name so the caller can surface a named reason.
package uploads

import (
	"fmt"
	"strings"
)

// Size and count limits per intake kind.
const (
	MaxComplaintFileSize = 10 << 20 // 10MB per complaint attachment
	MaxProfilePhotoSize  = 5 << 20  // 5MB profile picture
	MaxDocumentSize      = 10 << 20 // 10MB identity document

	MaxComplaintFiles = 5
)

// MIME type prefixes accepted for complaint attachments.
var complaintTypes = []string{
	"image/",
	"video/",
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

var photoTypes = []string{"image/jpeg", "image/png"}

var documentTypes = []string{"application/pdf", "image/jpeg", "image/png"}

// RejectionError names the file and the reason it was refused.
type RejectionError struct {
	FileName string
	Reason   string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.FileName, e.Reason)
}

func reject(name, reason string) error {
	return &RejectionError{FileName: name, Reason: reason}
}

func typeAllowed(contentType string, allowed []string) bool {
	for _, t := range allowed {
		if strings.HasPrefix(contentType, t) {
			return true
		}
	}
	return false
}

// ValidateComplaintFile checks one complaint attachment.
func ValidateComplaintFile(name, contentType string, size int64) error {
	if size > MaxComplaintFileSize {
		return reject(name, "is too large. Maximum size is 10MB")
	}
	if !typeAllowed(contentType, complaintTypes) {
		return reject(name, "is not a supported file type")
	}
	return nil
}

// ValidateComplaintCount rejects attachments beyond the per-complaint cap.
func ValidateComplaintCount(existing, incoming int) error {
	if existing+incoming > MaxComplaintFiles {
		return fmt.Errorf("maximum %d files allowed", MaxComplaintFiles)
	}
	return nil
}

// ValidateProfilePhoto checks a profile picture upload.
func ValidateProfilePhoto(name, contentType string, size int64) error {
	if size > MaxProfilePhotoSize {
		return reject(name, "is too large. Maximum size is 5MB")
	}
	if !typeAllowed(contentType, photoTypes) {
		return reject(name, "must be a JPG or PNG image")
	}
	return nil
}

// ValidateDocument checks an identity document upload.
func ValidateDocument(name, contentType string, size int64) error {
	if size > MaxDocumentSize {
		return reject(name, "is too large. Maximum size is 10MB")
	}
	if !typeAllowed(contentType, documentTypes) {
		return reject(name, "must be a PDF, JPG, or PNG file")
	}
	return nil
}
