package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/davispeixoto/object-playground/pkg/buildinfo"
	"github.com/davispeixoto/object-playground/pkg/errors"
	"github.com/davispeixoto/object-playground/pkg/fixture"
	"github.com/davispeixoto/object-playground/pkg/graph"
	"github.com/davispeixoto/object-playground/pkg/inspect"
	"github.com/davispeixoto/object-playground/pkg/pipeline"
)

// errorResponse is the JSON payload for failed requests.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// description is the single-node response shape of /v1/inspect.
type description struct {
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Fields    []inspect.Field `json:"fields"`
	Supertype *inspect.Field  `json:"supertype,omitempty"`
}

func describe(n *inspect.Node) description {
	d := description{
		Name:   n.Name(),
		Type:   n.Type(),
		Fields: n.Fields(),
	}
	if link, ok := n.SupertypeLink(); ok {
		d.Supertype = &link
	}
	return d
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// handleGraph runs the full pipeline on the posted model and responds with
// the graph document.
func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	opts, err := s.pipelineOptions(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := pipeline.Run(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, graph.FromGraph(result.Graph))
}

// handleInspect materializes the posted model and responds with a single
// node description: the walk root, or the definition named by ?node=NAME.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	opts, err := s.pipelineOptions(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	loader, err := fixture.ByFormat(opts.Format, fixture.Loaders()...)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	model, err := loader.Parse(opts.Source)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	name := r.URL.Query().Get("node")
	if name == "" && opts.Root != "" {
		model.Root = opts.Root
	}

	_, values, err := fixture.Materialize(model)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if name == "" {
		rootName, rootValue, err := fixture.RootValue(model, values)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		s.writeJSON(w, r, http.StatusOK, describe(inspect.New(rootName, rootValue)))
		return
	}

	v, ok := values[name]
	if !ok {
		s.writeError(w, r, errors.New(errors.ErrCodeNotFound, "unknown definition %q", name))
		return
	}
	s.writeJSON(w, r, http.StatusOK, describe(inspect.New(name, v)))
}

// pipelineOptions builds pipeline options from a request: the body is the
// model document, query parameters select format, root, and limits.
func (s *Server) pipelineOptions(w http.ResponseWriter, r *http.Request) (pipeline.Options, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	if len(body) == 0 {
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "request body is empty")
	}

	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = "json"
	}

	opts := pipeline.Options{
		Source:   body,
		Format:   format,
		Root:     q.Get("root"),
		MaxDepth: s.opts.MaxDepth,
		MaxNodes: s.opts.MaxNodes,
		Logger:   s.opts.Logger,
	}
	if v := q.Get("max_depth"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "invalid max_depth %q", v)
		}
		opts.MaxDepth = n
	}
	if v := q.Get("max_nodes"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "invalid max_nodes %q", v)
		}
		opts.MaxNodes = n
	}
	return opts, nil
}

// statusFor maps error codes onto HTTP statuses.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case errors.ErrCodeUnsupportedFormat:
		return http.StatusUnsupportedMediaType
	case errors.ErrCodeInvalidModel, errors.ErrCodeUnknownRef,
		errors.ErrCodeDuplicateDef, errors.ErrCodeLimitExceeded:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		s.opts.Logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	s.writeJSON(w, r, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		s.opts.Logger.Error("write response", "path", r.URL.Path, "err", err)
	}
}
