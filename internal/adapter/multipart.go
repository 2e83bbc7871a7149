package adapter

import (
	"io"
	"mime/multipart"
)

// streamMultipart encodes r as a single-file multipart body without buffering
// it in memory. The returned reader must be consumed or closed by the request.
func streamMultipart(field, filename string, r io.Reader) (io.ReadCloser, string) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile(field, filename)
		if err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, r); err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		_ = pw.CloseWithError(mw.Close())
	}()

	return pr, mw.FormDataContentType()
}
