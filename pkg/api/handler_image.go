package api

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/dispatch/pkg/agent"
)

// maxImageBytes bounds uploaded screenshots.
const maxImageBytes = 10 << 20

// PostImage handles a trip-sheet photo or screenshot: the OCR sidecar
// extracts the text, then the turn runs through the agent like any other
// message with the image flag set, so the operator gets contextual
// suggestions or an offer to create the trip.
func (s *Server) PostImage(c *gin.Context) {
	userID, err := strconv.Atoi(c.PostForm("user_id"))
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "user_id is required"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "an image file is required"})
		return
	}
	defer file.Close()

	if header.Size > maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error":   "invalid_request",
			"message": "Image is too large.",
		})
		return
	}

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "could not read the image"})
		return
	}

	extraction, err := s.extract.ExtractText(c.Request.Context(), image, header.Header.Get("Content-Type"))
	if err != nil {
		slog.Error("OCR extraction failed", "user_id", userID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "internal_error",
			"message": "Could not read the image. Try a clearer photo.",
		})
		return
	}

	out, err := s.agent.HandleMessage(c.Request.Context(), agent.MessageRequest{
		Text:        extraction.Text,
		UserID:      userID,
		CurrentPage: c.PostForm("current_page"),
		FromImage:   true,
	})
	if err != nil {
		slog.Error("Image message handling failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "The request could not be completed.",
		})
		return
	}

	out["ocr"] = gin.H{
		"ocr_text":   extraction.Text,
		"confidence": extraction.Confidence,
	}
	c.JSON(http.StatusOK, out)
}
