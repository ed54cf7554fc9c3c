// Package pack archives a report bundle so it can be published as a static site.
package pack

import (
	"archive/tar"
	"fmt"
	"mime"
	"os"
	"regexp"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/json"
	"github.com/tdewolff/minify/v2/xml"

	"prdesk.io/viewer/report"
)

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFuncRegexp(regexp.MustCompile("[/+]json$"), json.Minify)
	m.AddFuncRegexp(regexp.MustCompile("[/+]xml$"), xml.Minify)
	return m
}

// Pack writes all documents of b to a tar file. The root document becomes ./index.html. With
// minify set, HTML, CSS, JSON and XML documents are minified.
func Pack(filename string, b *report.Bundle, minify bool) error {
	minifier := newMinifier()

	file, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("opening file: %v", err)
	}
	defer file.Close()

	tw := tar.NewWriter(file)
	if err := tw.WriteHeader(&tar.Header{Name: "./", Mode: 0755, Typeflag: tar.TypeDir}); err != nil {
		return fmt.Errorf("writing header: %v", err)
	}

	for _, d := range b.Docs() {
		data := d.Data
		if minify {
			mimeType, _, err := mime.ParseMediaType(d.MimeType)
			if err != nil {
				return fmt.Errorf("invalid mime type of %s: %v", d.Path, err)
			}
			data, err = minifier.Bytes(mimeType, data)
			if err != nil {
				return fmt.Errorf("minification failed for %s: %v", d.Path, err)
			}
		}

		name := "./" + strings.TrimPrefix(d.Path, "/")
		if d.Path == "/" {
			name = "./index.html"
		}
		hdr := &tar.Header{
			Name: name,
			Mode: 0644,
			Size: int64(len(data)),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("writing header: %v", err)
		}
		if _, err := tw.Write(data); err != nil {
			return fmt.Errorf("writing body: %v", err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("closing archive: %v", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing file: %v", err)
	}
	return nil
}
