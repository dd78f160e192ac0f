package uploads

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateComplaintFile(t *testing.T) {
	tests := []struct {
		name        string
		fileName    string
		contentType string
		size        int64
		wantErr     string
	}{
		{"photo accepted", "pothole.jpg", "image/jpeg", 1 << 20, ""},
		{"video accepted", "leak.mp4", "video/mp4", 8 << 20, ""},
		{"pdf accepted", "report.pdf", "application/pdf", 2 << 20, ""},
		{"oversized rejected", "dump.mp4", "video/mp4", 11 << 20, "too large"},
		{"executable rejected", "tool.exe", "application/x-msdownload", 1 << 20, "not a supported file type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateComplaintFile(tt.fileName, tt.contentType, tt.size)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
			assert.ErrorContains(t, err, tt.fileName)
		})
	}
}

func TestValidateComplaintCount(t *testing.T) {
	assert.NoError(t, ValidateComplaintCount(0, 5))
	assert.NoError(t, ValidateComplaintCount(4, 1))
	assert.Error(t, ValidateComplaintCount(5, 1))
	assert.Error(t, ValidateComplaintCount(0, 6))
}

func TestValidateProfilePhoto(t *testing.T) {
	assert.NoError(t, ValidateProfilePhoto("me.png", "image/png", 1<<20))
	assert.ErrorContains(t, ValidateProfilePhoto("me.png", "image/png", 6<<20), "5MB")
	assert.ErrorContains(t, ValidateProfilePhoto("me.gif", "image/gif", 1<<20), "JPG or PNG")
}

func TestValidateDocument(t *testing.T) {
	assert.NoError(t, ValidateDocument("aadhaar.pdf", "application/pdf", 2<<20))
	assert.ErrorContains(t, ValidateDocument("aadhaar.pdf", "application/pdf", 11<<20), "10MB")
	assert.ErrorContains(t, ValidateDocument("scan.tiff", "image/tiff", 1<<20), "PDF, JPG, or PNG")
}

func TestRejectionErrorNamesTheFile(t *testing.T) {
	err := ValidateComplaintFile("huge.mov", "video/quicktime", MaxComplaintFileSize+1)
	var rejection *RejectionError
	assert.ErrorAs(t, err, &rejection)
	assert.Equal(t, "huge.mov", rejection.FileName)
}
