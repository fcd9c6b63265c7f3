package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sashishekhar/Meeting-Notes-Summarizer/internal/mailer"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Stable client-facing failure messages. Raw provider errors stay in the
// server log and are never forwarded to the client.
const (
	errSummarizeFailed = "Failed to generate summary."
	errEmailFailed     = "Failed to send email."
	errEmailRequired   = "`to` and `text` are required."
)

type summarizeRequest struct {
	Transcript string `json:"transcript"`
	Prompt     string `json:"prompt"`
}

type sendEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

type exportRequest struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// handleSummarize accepts {transcript, prompt} and returns {summary}. The
// endpoint performs no input validation; an empty request still reaches the
// provider. Emptiness is the client's concern.
func (s *Server) handleSummarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Error(c.Request.Context(), "Summarize request decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errSummarizeFailed})
		return
	}

	prompt := req.Prompt
	if prompt == "" {
		prompt = s.prompts.Current()
	}

	summary, err := s.summarizer.Summarize(c.Request.Context(), req.Transcript, prompt)
	if err != nil {
		s.logger.Error(c.Request.Context(), "Summarize failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errSummarizeFailed})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// handleSendEmail accepts {to, subject?, text} and dispatches a single email
// with both a plain-text and an HTML-escaped body.
func (s *Server) handleSendEmail(c *gin.Context) {
	var req sendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Error(c.Request.Context(), "Send email request decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": errEmailFailed})
		return
	}

	if req.To == "" || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": errEmailRequired})
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = s.cfg.Email.Subject
	}

	id, err := s.mailer.Send(c.Request.Context(), mailer.Message{
		To:      req.To,
		Subject: subject,
		Text:    req.Text,
		HTML:    mailer.HTMLBody(req.Text),
	})
	if err != nil {
		s.logger.Error(c.Request.Context(), "Send email failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": errEmailFailed})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"id": id}})
}

// handleExport renders the summary as a docx attachment.
func (s *Server) handleExport(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Summary == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "`summary` is required."})
		return
	}

	title := req.Title
	if title == "" {
		title = s.cfg.Email.Subject
	}

	data, err := s.exporter.Export(title, req.Summary)
	if err != nil {
		s.logger.Error(c.Request.Context(), "Export failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export summary."})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="meeting-summary.docx"`)
	c.Data(http.StatusOK, docxContentType, data)
}
