package api

import (
	"net/http"

	"github.com/rpupo63/storefront-site-backend/showcase"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type noticeHandler struct {
	responder Responder
	logger    zerolog.Logger
	board     *showcase.NoticeBoard
}

func newNoticeHandler(board *showcase.NoticeBoard) noticeHandler {
	logger := log.With().Str("handlerName", "noticeHandler").Logger()

	return noticeHandler{
		responder: NewResponder(logger),
		logger:    logger,
		board:     board,
	}
}

// getNotices hands the caller its pending notices, once
// @Summary Drain notices
// @Tags Notices
// @Produce json
// @Success 200 {object} NoticeCollection
// @Router /api/notices [get]
func (h noticeHandler) getNotices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notices := []showcase.Notice{}
		if audience := sessionID(r); audience != "" {
			notices = h.board.Drain(audience)
		}

		h.responder.WriteJSON(w, NoticeCollection{Notices: notices})
	}
}
