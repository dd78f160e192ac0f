// Package share builds outbound share payloads for complaints. The targets
// are fire-and-forget handoffs: the portal constructs the URL or text and
// never awaits a response.
package share

import (
	"errors"
	"fmt"
	"net/url"

	"fixmycity/internal/models"
)

// Target identifies one of the supported share destinations.
type Target string

const (
	TargetCopy     Target = "copy"
	TargetWhatsApp Target = "whatsapp"
	TargetTwitter  Target = "twitter"
	TargetFacebook Target = "facebook"
	TargetEmail    Target = "email"
)

// ErrUnsupportedTarget is returned for targets outside the closed set.
var ErrUnsupportedTarget = errors.New("unsupported share target")

const emailSubject = "Important Community Issue"

// Builder constructs share links rooted at the portal's public base URL.
type Builder struct {
	BaseURL string
}

// NewBuilder returns a Builder for the given public base URL.
func NewBuilder(baseURL string) Builder {
	return Builder{BaseURL: baseURL}
}

// ComplaintURL is the public link for a complaint.
func (b Builder) ComplaintURL(c *models.Complaint) string {
	return fmt.Sprintf("%s/complaints/%s", b.BaseURL, c.ID)
}

// ShareText is the human-readable blurb attached to every share.
func (b Builder) ShareText(c *models.Complaint) string {
	return fmt.Sprintf("Check out this complaint: %s - %s", c.Title, c.Description)
}

// Link builds the payload for one target. For TargetCopy the payload is the
// clipboard text itself; for the rest it is the URL to open.
func (b Builder) Link(target Target, c *models.Complaint) (string, error) {
	shareURL := b.ComplaintURL(c)
	shareText := b.ShareText(c)

	switch target {
	case TargetCopy:
		return shareURL, nil
	case TargetWhatsApp:
		return "https://wa.me/?text=" + url.QueryEscape(shareText+"\n"+shareURL), nil
	case TargetTwitter:
		return "https://twitter.com/intent/tweet?text=" + url.QueryEscape(shareText) +
			"&url=" + url.QueryEscape(shareURL), nil
	case TargetFacebook:
		return "https://www.facebook.com/sharer/sharer.php?u=" + url.QueryEscape(shareURL), nil
	case TargetEmail:
		return "mailto:?subject=" + url.QueryEscape(emailSubject) +
			"&body=" + url.QueryEscape(shareText+"\n\n"+shareURL), nil
	}
	return "", ErrUnsupportedTarget
}

// Links builds the payloads for all targets at once.
func (b Builder) Links(c *models.Complaint) map[Target]string {
	out := make(map[Target]string, 5)
	for _, t := range []Target{TargetCopy, TargetWhatsApp, TargetTwitter, TargetFacebook, TargetEmail} {
		link, _ := b.Link(t, c)
		out[t] = link
	}
	return out
}
