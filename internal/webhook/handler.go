package webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"journal-ripples/internal/automation"
	"journal-ripples/internal/model"
	pkgResponse "journal-ripples/pkg/response"
)

const maxBodyBytes = 1 << 20

// HandleEntryEvent godoc
// @Summary     Receive a journal entry event
// @Description Signed entry.created, entry.updated and entry.deleted events. Analysis runs before the response.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       X-Journal-Signature header string true  "sha256=<hex HMAC of the body>"
// @Param       X-Delivery-ID       header string false "Delivery id, repeated deliveries are acknowledged without processing"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Invalid signature"
// @Failure     403 {object} response.Resp "IP not allowed"
// @Failure     413 {object} response.Resp "Payload too large"
// @Failure     429 {object} response.Resp "Rate limit exceeded"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /webhook/entries [POST]
func (h *Handler) HandleEntryEvent(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "Entry webhook rejected: %v", err)
		pkgResponse.Forbidden(c)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.l.Warnf(ctx, "Entry webhook body over %d bytes", tooLarge.Limit)
			pkgResponse.Status(c, http.StatusRequestEntityTooLarge, "payload too large")
			return
		}
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if err := h.security.ValidateSignature(body, c.GetHeader(SignatureHeader)); err != nil {
		h.l.Errorf(ctx, "Entry webhook signature verification failed: %v", err)
		pkgResponse.Status(c, http.StatusUnauthorized, "invalid signature")
		return
	}

	if err := h.security.CheckRateLimit(extractIP(c.Request)); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		pkgResponse.TooManyRequests(c)
		return
	}

	deliveryID := c.GetHeader(DeliveryIDHeader)
	if h.security.Delivered(deliveryID) {
		h.l.Infof(ctx, "Delivery %s already processed, ignoring", deliveryID)
		pkgResponse.OK(c, gin.H{"status": "duplicate"})
		return
	}

	payload, err := parsePayload(body)
	if err != nil {
		h.l.Warnf(ctx, "Invalid entry event: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	output, err := h.dispatch(c, payload)
	if err != nil {
		if isClientError(err) {
			h.l.Warnf(ctx, "Invalid entry event %s: %v", payload.Event, err)
			pkgResponse.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "Entry event %s failed: %v", payload.Event, err)
		pkgResponse.InternalError(c, err)
		return
	}

	h.security.MarkDelivered(deliveryID)
	pkgResponse.OK(c, gin.H{
		"status":          "processed",
		"entry_id":        output.EntryID,
		"skipped":         output.Skipped,
		"ripples":         len(output.Ripples),
		"suggested_tasks": output.SuggestedTasks,
		"deleted":         output.Deleted,
	})
}

func isClientError(err error) bool {
	return errors.Is(err, errInvalidEntry) ||
		errors.Is(err, automation.ErrEntryIDRequired) ||
		errors.Is(err, automation.ErrEntryDateRequired)
}

// dispatch hands the event to the orchestrator synchronously.
func (h *Handler) dispatch(c *gin.Context, p entryPayload) (automation.AnalyzeOutput, error) {
	ctx := c.Request.Context()
	sc := model.Scope{UserID: p.UserID}

	switch p.Event {
	case EventEntryCreated:
		entry, err := p.Entry.toModel(p.UserID)
		if err != nil {
			return automation.AnalyzeOutput{}, err
		}
		return h.entries.OnEntryCreated(ctx, sc, entry)

	case EventEntryUpdated:
		entry, err := p.Entry.toModel(p.UserID)
		if err != nil {
			return automation.AnalyzeOutput{}, err
		}
		input := automation.UpdateInput{Entry: entry}
		if p.Previous != nil {
			if input.Previous, err = p.Previous.toModel(p.UserID); err != nil {
				return automation.AnalyzeOutput{}, err
			}
		}
		return h.entries.OnEntryUpdated(ctx, sc, input)

	default:
		return h.entries.OnEntryDeleted(ctx, sc, p.EntryID)
	}
}
