package workbook

import (
	"mime"
	"path/filepath"
	"strings"
)

// DefaultDownloadSuffix is appended to the upload's base name.
const DefaultDownloadSuffix = "_분류결과"

// ContentType is the media type of the result workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DownloadName derives the result file name from the uploaded one:
// "order.xlsx" becomes "order<suffix>.xlsx". An empty upload name yields
// "result<suffix>.xlsx".
func DownloadName(uploadName, suffix string) string {
	base := filepath.Base(strings.ReplaceAll(uploadName, `\`, "/"))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == "/" {
		base = "result"
	}
	return base + suffix + ".xlsx"
}

// ContentDisposition renders an attachment header for name. Non-ASCII
// names are sent in the RFC 2231 extended filename* form.
func ContentDisposition(name string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": name})
}
