package params

import (
	"fmt"
	"io"
	"maps"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"slices"
	"strings"
)

// FileUpload is an uploaded file held in memory.
type FileUpload struct {
	// Filename is the client supplied name with any path components removed.
	Filename string
	// Size is the number of bytes read.
	Size int64
	// Header contains the MIME header of the multipart section.
	Header textproto.MIMEHeader
	// Content is the file body.
	Content []byte
}

// ContentType returns the declared media type of the upload, falling back to
// the type implied by the file extension.
func (f *FileUpload) ContentType() string {
	if f == nil {
		return ""
	}
	if ct := f.Header.Get("Content-Type"); ct != "" {
		if mediaType, _, err := mime.ParseMediaType(ct); err == nil {
			return mediaType
		}
	}
	if ct := mime.TypeByExtension(filepath.Ext(f.Filename)); ct != "" {
		mediaType, _, _ := mime.ParseMediaType(ct)
		return mediaType
	}
	return ""
}

// String renders the upload for error messages.
func (f *FileUpload) String() string {
	if f == nil {
		return ""
	}
	return f.Filename
}

// expandFiles reads every uploaded file into the tree.
// One file under a name maps to *FileUpload, several to []any of *FileUpload.
func expandFiles(files map[string][]*multipart.FileHeader) (map[string]any, error) {
	tree := make(map[string]any, len(files))

	for _, key := range slices.Sorted(maps.Keys(files)) {
		headers := files[key]
		if len(headers) == 0 {
			continue
		}

		uploads := make([]any, 0, len(headers))
		for _, fh := range headers {
			upload, err := readFileHeader(fh)
			if err != nil {
				return nil, err
			}
			uploads = append(uploads, upload)
		}

		var value any = uploads
		if len(uploads) == 1 {
			value = uploads[0]
		}
		setPath(tree, splitKey(key), value)
	}
	fixLists(tree)
	return tree, nil
}

func readFileHeader(fh *multipart.FileHeader) (*FileUpload, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", ErrFailedToReadFile, fh.Filename, err)
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %v", ErrFailedToReadFile, fh.Filename, err)
	}

	return &FileUpload{
		Filename: sanitizeFilename(fh.Filename),
		Size:     int64(len(content)),
		Header:   fh.Header,
		Content:  content,
	}, nil
}

// sanitizeFilename strips directories and NUL bytes to block path traversal.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}
	return filename
}
