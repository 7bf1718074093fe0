package server

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/jonathan/csb-validator/internal/logging"
	"github.com/jonathan/csb-validator/internal/rendering"
	"github.com/jonathan/csb-validator/internal/server/middleware"
)

// uploadField is the multipart form field carrying the file
const uploadField = "file"

// defaultUploadName labels raw-body uploads without a filename query parameter
const defaultUploadName = "upload.geojson"

// handleValidate validates one uploaded file. Any outcome, including a file
// that cannot be parsed, is a 200 carrying the file's JSON section.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	name, content, err := s.readUpload(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	outcome := s.validator.ValidateContent(content)
	RecordOutcome(outcome)

	logging.Debug().
		Str("request_id", middleware.GetRequestID(r.Context())).
		Str("file", name).
		Stringer("status", outcome.Status).
		Int("violations", outcome.ViolationCount()).
		Msg("upload validated")

	s.jsonResponse(w, http.StatusOK, rendering.NewFileDocument(name, outcome))
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// readUpload returns the upload's display name and content, from the "file"
// field of a multipart form or from the raw request body.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return s.readMultipart(r)
	}

	content, err := io.ReadAll(r.Body)
	if err != nil {
		return "", nil, s.bodyError(err)
	}
	if len(content) == 0 {
		return "", nil, &ErrValidation{Field: "body", Message: "empty request body"}
	}

	name := defaultUploadName
	if q := strings.TrimSpace(r.URL.Query().Get("filename")); q != "" {
		name = filepath.Base(q)
	}
	return name, content, nil
}

func (s *Server) readMultipart(r *http.Request) (string, []byte, error) {
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		return "", nil, s.bodyError(err)
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		return "", nil, &ErrValidation{Field: uploadField, Message: "missing form field"}
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", nil, s.bodyError(err)
	}
	return filepath.Base(header.Filename), content, nil
}

func (s *Server) bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) || errors.Is(err, multipart.ErrMessageTooLarge) {
		return &ErrPayloadTooLarge{Limit: s.maxUploadBytes}
	}
	return &ErrValidation{Field: "body", Message: err.Error()}
}
