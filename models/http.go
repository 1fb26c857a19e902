package models

// ErrorResponse is the documented error payload written by the terminal
// error hook.
type ErrorResponse struct {
	// Code is the HTTP status code of the failure.
	Code int `json:"code"`

	// Msg is a human-readable description. Outside development the message
	// of unexpected failures is replaced with a generic one.
	Msg string `json:"msg"`
}

// UploadResponse is written by the upload route when no completion handler
// is supplied and a file was stored.
type UploadResponse struct {
	// URL is the location of the stored file relative to the root
	// directory, for example "/temp/upload/20260102/1767312000000-a1b2c3.png".
	URL string `json:"url"`

	// Ext is the original file extension including the leading dot. Empty
	// when the uploaded file had no extension.
	Ext string `json:"ext"`
}
