package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/matzehuels/symbolmod/pkg/errors"
	"github.com/matzehuels/symbolmod/pkg/geom"
	"github.com/matzehuels/symbolmod/pkg/modifier"
	"github.com/matzehuels/symbolmod/pkg/pipeline"
)

// HeaderDiagnostics lists dropped options, separated by "; ".
const HeaderDiagnostics = "X-Symbolmod-Diagnostics"

// modifiersRequest is the POST body.
type modifiersRequest struct {
	Affiliation string         `json:"affiliation"`
	Dimension   string         `json:"dimension,omitempty"`
	Base        *geom.BBox     `json:"base,omitempty"`
	NoBase      bool           `json:"no_base,omitempty"`
	BBox        *geom.BBox     `json:"bbox,omitempty"`
	Options     map[string]any `json:"options,omitempty"`
	Format      string         `json:"format,omitempty"`
	Padding     *float64       `json:"padding,omitempty"`
	Refresh     bool           `json:"refresh,omitempty"`
}

type modifiersResponse struct {
	RequestID   string          `json:"request_id"`
	Result      json.RawMessage `json:"result"`
	Diagnostics []errorBody     `json:"diagnostics"`
	CacheHit    bool            `json:"cache_hit"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handlePostModifiers(w http.ResponseWriter, r *http.Request) {
	var body modifiersRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, string(errors.ErrCodeInvalidInput), "invalid request body: "+err.Error())
		return
	}
	s.serveModifiers(w, r, body)
}

func (s *Server) handleGetModifiers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	body := modifiersRequest{
		Affiliation: q.Get("affiliation"),
		Dimension:   q.Get("dimension"),
		Format:      q.Get("format"),
		Options:     make(map[string]any),
	}

	switch base := q.Get("base"); base {
	case "":
	case "none":
		body.NoBase = true
	default:
		b, err := geom.Parse(base)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, string(errors.ErrCodeInvalidInput), err.Error())
			return
		}
		body.Base = &b
	}
	if v := q.Get("bbox"); v != "" {
		b, err := geom.Parse(v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, string(errors.ErrCodeInvalidInput), err.Error())
			return
		}
		body.BBox = &b
	}
	if v := q.Get("padding"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, string(errors.ErrCodeInvalidInput), "padding: "+err.Error())
			return
		}
		body.Padding = &p
	}
	body.Refresh, _ = strconv.ParseBool(q.Get("refresh"))

	for _, key := range []string{modifier.KeyReinforced, modifier.KeySignature, modifier.KeySpecialHeadquarters} {
		if q.Has(key) {
			body.Options[key] = q.Get(key)
		}
	}
	if q.Has(modifier.KeyStack) {
		// A non-numeric stack is passed through as a string so that it is
		// reported like any other invalid option.
		raw := q.Get(modifier.KeyStack)
		if n, err := strconv.Atoi(raw); err == nil {
			body.Options[modifier.KeyStack] = n
		} else {
			body.Options[modifier.KeyStack] = raw
		}
	}
	s.serveModifiers(w, r, body)
}

func (s *Server) serveModifiers(w http.ResponseWriter, r *http.Request, body modifiersRequest) {
	format := body.Format
	if format == "" {
		format = pipeline.FormatSVG
	}
	req := pipeline.Request{
		Affiliation: body.Affiliation,
		Dimension:   body.Dimension,
		Base:        body.Base,
		BBox:        body.BBox,
		Options:     body.Options,
		Formats:     []string{format},
		Padding:     body.Padding,
		Refresh:     body.Refresh,
		Logger:      s.logger.With("request_id", GetRequestID(r.Context())),
	}
	if req.Base == nil && !body.NoBase {
		base := pipeline.DefaultBase
		req.Base = &base
	}

	res, err := s.runner.Execute(r.Context(), req)
	if err != nil {
		writeCodedError(w, r, err)
		return
	}

	diags := diagnostics(res.Diagnostics)
	if len(diags) > 0 {
		msgs := make([]string, len(diags))
		for i, d := range diags {
			msgs[i] = d.Message
		}
		w.Header().Set(HeaderDiagnostics, strings.Join(msgs, "; "))
	}

	artifact := res.Artifacts[format]
	switch format {
	case pipeline.FormatSVG:
		w.Header().Set("Content-Type", "image/svg+xml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(artifact)
	default:
		writeJSON(w, http.StatusOK, modifiersResponse{
			RequestID:   GetRequestID(r.Context()),
			Result:      json.RawMessage(artifact),
			Diagnostics: diags,
			CacheHit:    res.CacheHit,
		})
	}
}

func diagnostics(err error) []errorBody {
	out := []errorBody{}
	for _, d := range errors.Diagnostics(err) {
		out = append(out, errorBody{Code: string(errors.GetCode(d)), Message: errors.UserMessage(d)})
	}
	return out
}

// writeCodedError maps the error code to an HTTP status.
func writeCodedError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidOption, errors.ErrCodeInvalidAffiliation,
		errors.ErrCodeInvalidDimension, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidColor:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeTimeout:
		status = http.StatusGatewayTimeout
	case "":
		code = errors.ErrCodeInternal
	}
	writeError(w, r, status, string(code), errors.UserMessage(err))
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, errorBody{Code: code, Message: message})
}
