package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mvisser/dyngate/internal/api/models"
	"github.com/mvisser/dyngate/internal/ddns"
)

// Update godoc
// @Summary No-IP compatible DDNS update
// @Description Updates the A record for hostname to myip when it differs
// @Description from the published value. Answers with the No-IP plaintext
// @Description tokens: badauth, nohost, nochg <ip>, good <ip>, 911.
// @Tags ddns
// @Produce plain
// @Param hostname query string true "Fully qualified domain name"
// @Param myip query string false "IPv4 address; defaults to the caller's address"
// @Success 200 {string} string "good <ip> or nochg <ip>"
// @Failure 400 {string} string "nohost"
// @Failure 401 {string} string "badauth"
// @Failure 502 {string} string "911"
// @Security BasicAuth
// @Router /nic/update [get]
func (h *Handler) Update(c *gin.Context) {
	if h.cfg.Server.RequireUserAgent && c.GetHeader("User-Agent") == "" {
		c.String(http.StatusBadRequest, "badagent")
		return
	}

	hostname, myip, ok := h.updateParams(c)
	if !ok {
		h.respond(c, ddns.Outcome{Kind: ddns.BadRequest})
		return
	}
	if myip == "" && h.cfg.Server.FallbackToSource {
		myip = c.ClientIP()
	}

	// Syntax validation runs before any credential or backend call.
	host, err := ddns.NormalizeHostname(hostname)
	if err != nil {
		h.respond(c, ddns.Outcome{Kind: ddns.BadRequest})
		return
	}
	ip, err := ddns.NormalizeIPv4(myip)
	if err != nil {
		h.respond(c, ddns.Outcome{Kind: ddns.BadRequest})
		return
	}

	username, password, ok := c.Request.BasicAuth()
	if !ok {
		h.respond(c, ddns.Outcome{Kind: ddns.Unauthorized})
		return
	}
	switch err := h.auth.Authenticate(c.Request.Context(), username, password); {
	case errors.Is(err, ddns.ErrBadCredentials):
		h.respond(c, ddns.Outcome{Kind: ddns.Unauthorized})
		return
	case err != nil:
		h.logger.Error("credential fetch failed", "error", err)
		h.respond(c, ddns.Outcome{Kind: ddns.BackendError})
		return
	}

	h.respond(c, h.reconciler.Reconcile(c.Request.Context(), host, ip))
}

// updateParams extracts hostname and myip from the query on GET and from the
// JSON body on PUT.
func (h *Handler) updateParams(c *gin.Context) (hostname, myip string, ok bool) {
	if c.Request.Method == http.MethodPut {
		var body models.UpdateBody
		if err := c.ShouldBindJSON(&body); err != nil {
			return "", "", false
		}
		return body.Hostname, body.MyIP, true
	}
	return c.Query("hostname"), c.Query("myip"), true
}

func (h *Handler) respond(c *gin.Context, o ddns.Outcome) {
	r := ddns.Respond(o)
	c.String(r.Status, r.Body)
}
