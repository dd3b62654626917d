package notifications

import (
	"errors"
	"net/http"
	"strconv"

	"loyalty-server/internal/apierrors"
	"loyalty-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Handler exposes the outbound queue to the delivery collaborator
type Handler struct {
	queue  Queue
	logger *observability.Logger
}

func NewHandler(queue Queue, logger *observability.Logger) Handler {
	return Handler{queue: queue, logger: logger}
}

// HandleDrain pops up to ?max= queued messages (default 100, 0 drains everything)
func (h *Handler) HandleDrain(c *gin.Context) {
	ctx := c.Request.Context()

	max, err := strconv.Atoi(c.DefaultQuery("max", "100"))
	if err != nil || max < 0 {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "max must be a non-negative integer"))
		return
	}

	msgs, err := Drain(ctx, h.queue, max)
	if err != nil {
		if errors.Is(err, ErrDrainUnsupported) {
			apierrors.RespondWithError(c, apierrors.Conflict(apierrors.CodeDrainUnsupported, "Notifications are published to Kafka and cannot be drained here"))
			return
		}
		h.logger.Error(ctx, "failed to drain notifications", err)
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": msgs, "count": len(msgs)})
}
