package storage

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Policy describes what a multipart field accepts.
type Policy struct {
	Field string
	// Dir is the sub directory below the upload root, also the URL segment.
	Dir string
	// Allowed maps lowercase extensions to the MIME types their content may sniff as.
	Allowed map[string][]string
	// Compress downscales jpeg and png images before they are written.
	Compress bool
}

var (
	ResumePolicy = Policy{
		Field: "resume",
		Dir:   "resumes",
		Allowed: map[string][]string{
			".pdf":  {"application/pdf"},
			".doc":  {"application/msword", "application/x-ole-storage"},
			".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "application/zip"},
		},
	}
	ProfilePicPolicy = Policy{
		Field: "profile_pic",
		Dir:   "profile_pics",
		Allowed: map[string][]string{
			".jpg":  {"image/jpeg"},
			".jpeg": {"image/jpeg"},
			".png":  {"image/png"},
			".gif":  {"image/gif"},
		},
		Compress: true,
	}
	LogoPolicy = Policy{
		Field: "logo",
		Dir:   "logos",
		Allowed: map[string][]string{
			".jpg":  {"image/jpeg"},
			".jpeg": {"image/jpeg"},
			".png":  {"image/png"},
		},
		Compress: true,
	}
)

// check validates the declared extension against the sniffed content and
// returns the extension to store the file under.
func (p Policy) check(filename string, mt *mimetype.MIME) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		// No extension declared: trust the content if it is allowed at all.
		for allowedExt, mimes := range p.Allowed {
			if matches(mt, mimes) {
				return allowedExt, true
			}
		}
		return "", false
	}
	mimes, ok := p.Allowed[ext]
	if !ok {
		return "", false
	}
	return ext, matches(mt, mimes)
}

func matches(mt *mimetype.MIME, mimes []string) bool {
	for m := mt; m != nil; m = m.Parent() {
		if mimetype.EqualsAny(m.String(), mimes...) {
			return true
		}
	}
	return false
}
