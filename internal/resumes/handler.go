package resumes

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/shared/util"
	"resume-builder/internal/uploads"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc           *Service
	Store         object.ObjectStore
	PublicBaseURL string
}

// NewHandler constructs a Handler. publicBaseURL overrides the
// request-derived base of returned resume URLs when non-empty.
func NewHandler(svc *Service, store object.ObjectStore, publicBaseURL string) *Handler {
	return &Handler{Svc: svc, Store: store, PublicBaseURL: publicBaseURL}
}

// RegisterRoutes attaches resume routes to the router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/create-resume", h.create)
	r.GET("/resume/:id", h.view)
	r.GET("/resumes/:fileName", h.download)
	r.GET("/uploads/:fileName", h.picture)
}

func (h *Handler) create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	sub := Submission{
		Name:       c.PostForm("name"),
		FatherName: c.PostForm("fname"),
		CNIC:       c.PostForm("cnic"),
		Email:      c.PostForm("email"),
		Phone:      c.PostForm("phone"),
		Education:  c.PostForm("education"),
		Experience: c.PostForm("experience"),
		Skills:     c.PostForm("skills"),
	}

	fileHeader, err := c.FormFile("profilePicture")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			respond.Error(c, http.StatusBadRequest, "Unable to read profile picture")
			return
		}
		fileHeader = nil
	}

	rec, err := h.Svc.Create(c.Request.Context(), sub, fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingRequired):
			respond.Error(c, http.StatusBadRequest, "Name, email, and phone are required")
		case errors.Is(err, uploads.ErrUnsupportedType), errors.Is(err, uploads.ErrInvalidImage):
			respond.Error(c, http.StatusBadRequest, "Only images are allowed")
		case errors.Is(err, uploads.ErrStoreFailed):
			respond.Error(c, http.StatusBadRequest, "File upload error")
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to create resume")
		}
		return
	}

	c.Set("resumeId", rec.ID)
	respond.OK(c, gin.H{"url": h.baseURL(c) + "/resume/" + rec.ID})
}

func (h *Handler) view(c *gin.Context) {
	rec, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.String(http.StatusNotFound, "Resume not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to load resume")
		return
	}

	c.Set("resumeId", rec.ID)
	page, err := buildViewPage(rec)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to render resume")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func (h *Handler) download(c *gin.Context) {
	h.stream(c, PDFKeyPrefix, c.Param("fileName"), "application/pdf")
}

func (h *Handler) picture(c *gin.Context) {
	fileName := c.Param("fileName")
	contentType := mime.TypeByExtension(filepath.Ext(fileName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.stream(c, uploads.KeyPrefix, fileName, contentType)
}

// stream serves a stored file. The file name comes straight off the URL,
// so it is sanitized before being used as a storage key.
func (h *Handler) stream(c *gin.Context, keyPrefix, fileName, contentType string) {
	name, err := util.SanitizeFileName(fileName)
	if err != nil {
		c.String(http.StatusNotFound, "File not found")
		return
	}

	rc, err := h.Store.Open(c.Request.Context(), keyPrefix+name)
	if err != nil {
		c.String(http.StatusNotFound, "File not found")
		return
	}
	defer rc.Close()

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		telemetry.Error("stream.failed", map[string]any{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
	}
}

func (h *Handler) baseURL(c *gin.Context) string {
	if h.PublicBaseURL != "" {
		return h.PublicBaseURL
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}
