package content

import (
	"fmt"
	"strings"
)

// ImageURL resolves a raw image asset reference
// (image-<assetId>-<WxH>-<ext>) to its CDN URL. Zero width/height skip the
// resize parameters. Unparseable refs return an empty string.
func (c *Client) ImageURL(ref string, width, height int) string {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return ""
	}
	base := fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s-%s.%s",
		c.projectID, c.dataset, parts[1], parts[2], parts[3])
	if width > 0 && height > 0 {
		return fmt.Sprintf("%s?w=%d&h=%d&fit=crop", base, width, height)
	}
	return base
}
