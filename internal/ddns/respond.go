package ddns

import "net/http"

// Response is a plaintext protocol reply.
type Response struct {
	Status int
	Body   string
}

// Respond maps an outcome onto the No-IP response vocabulary. The mapping is
// total: an outcome kind this switch does not know about is reported as a
// server error rather than leaking anything else to the client.
func Respond(o Outcome) Response {
	switch o.Kind {
	case Unauthorized:
		return Response{Status: http.StatusUnauthorized, Body: "badauth"}
	case BadRequest:
		return Response{Status: http.StatusBadRequest, Body: "nohost"}
	case NoChange:
		return Response{Status: http.StatusOK, Body: "nochg " + o.IP}
	case Updated:
		return Response{Status: http.StatusOK, Body: "good " + o.IP}
	case BackendError:
		return Response{Status: http.StatusBadGateway, Body: "911"}
	default:
		return Response{Status: http.StatusBadGateway, Body: "911"}
	}
}
