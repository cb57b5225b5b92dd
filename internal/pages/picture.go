package pages

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/fitstreak/internal/auth"
	"github.com/2beens/fitstreak/internal/telemetry/tracing"
	"github.com/2beens/fitstreak/internal/users"
	"github.com/2beens/fitstreak/pkg"

	log "github.com/sirupsen/logrus"
)

const (
	MaxPictureSize = 2 << 20
	// room for the multipart envelope around the file
	multipartOverhead = 64 << 10
)

type successResponse struct {
	Success bool `json:"success"`
}

func (h *Handler) HandleProfilePicture(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.pages.picture.get")
	defer span.End()

	session := auth.FromContext(ctx)
	if !session.IsAuthenticated() {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	picture, err := h.pictures.GetProfilePicture(ctx, session.Username)
	if err != nil {
		if errors.Is(err, users.ErrNoProfilePicture) || errors.Is(err, users.ErrUserNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		log.Errorf("get profile picture [%s]: %s", session.Username, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	contentType := picture.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(picture.Data)
	}
	w.Header().Set("Cache-Control", "private, max-age=60")
	pkg.WriteResponseBytesOK(w, contentType, picture.Data)
}

func (h *Handler) HandleUploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.pages.picture.upload")
	defer span.End()

	session := auth.FromContext(ctx)
	if !session.IsAuthenticated() {
		pkg.WriteJSONError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxPictureSize+multipartOverhead)
	if err := r.ParseMultipartForm(MaxPictureSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			pkg.WriteJSONError(w, "picture too large", http.StatusRequestEntityTooLarge)
			return
		}
		pkg.WriteJSONError(w, "invalid upload", http.StatusBadRequest)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			if err := r.MultipartForm.RemoveAll(); err != nil {
				log.Warnf("upload profile picture, remove temp files: %s", err)
			}
		}
	}()

	file, _, err := r.FormFile("picture")
	if err != nil {
		pkg.WriteJSONError(w, "picture is missing", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxPictureSize+1))
	if err != nil {
		log.Errorf("upload profile picture [%s], read: %s", session.Username, err)
		pkg.WriteJSONError(w, "invalid upload", http.StatusBadRequest)
		return
	}
	if len(data) > MaxPictureSize {
		pkg.WriteJSONError(w, "picture too large", http.StatusRequestEntityTooLarge)
		return
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		pkg.WriteJSONError(w, "picture must be an image", http.StatusBadRequest)
		return
	}

	if err := h.pictures.SetProfilePicture(ctx, session.Username, users.Picture{
		ContentType: contentType,
		Data:        data,
	}); err != nil {
		log.Errorf("upload profile picture [%s]: %s", session.Username, err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, successResponse{Success: true}, http.StatusOK)
}
