package server

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	calc "github.com/rpgo/retirement-savings/internal/calculation"
	"github.com/rpgo/retirement-savings/internal/config"
	"github.com/rpgo/retirement-savings/internal/domain"
)

const maxBodyBytes = 1 << 20

// Projector runs a full savings projection.
type Projector interface {
	Run(ctx context.Context, in *domain.ProjectionInput) (*domain.ProjectionResult, error)
}

// ContributionSolver finds the monthly contribution that reaches a savings goal.
type ContributionSolver interface {
	SolveGoal(g *domain.ContributionGoal) (calc.ContributionSolution, error)
}

type Handler struct {
	projector Projector
	solver    ContributionSolver
	parser    *config.InputParser
}

func NewHandler(projector Projector, solver ContributionSolver, parser *config.InputParser) *Handler {
	if parser == nil {
		parser = config.NewInputParser()
	}
	return &Handler{
		projector: projector,
		solver:    solver,
		parser:    parser,
	}
}

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ExampleInput(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.parser.CreateExampleInput())
}

// CreateProjection accepts either a JSON ProjectionInput or the form-encoded
// string fields of the web form.
func (h *Handler) CreateProjection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var (
		in  *domain.ProjectionInput
		err error
	)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		in, err = h.parseForm(r, mediaType)
	default:
		in, err = h.parseJSON(r)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.projector.Run(ctx, in)
	if err != nil {
		logger.Warn().Err(err).Msg("projection failed")
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (h *Handler) parseForm(r *http.Request, mediaType string) (*domain.ProjectionInput, error) {
	var err error
	if mediaType == "multipart/form-data" {
		err = r.ParseMultipartForm(maxBodyBytes)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: malformed form body: %v", domain.ErrInvalidInput, err)
	}

	fields := make(map[string]string, len(r.PostForm))
	for k := range r.PostForm {
		fields[k] = r.PostForm.Get(k)
	}
	return h.parser.ParseForm(fields)
}

func (h *Handler) parseJSON(r *http.Request) (*domain.ProjectionInput, error) {
	var in domain.ProjectionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON body: %v", domain.ErrInvalidInput, err)
	}
	if err := h.parser.ValidateInput(&in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (h *Handler) SolveContribution(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var goal domain.ContributionGoal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		writeError(w, r, fmt.Errorf("%w: malformed JSON body: %v", domain.ErrInvalidInput, err))
		return
	}

	sol, err := h.solver.SolveGoal(&goal)
	if err != nil {
		logger.Warn().Err(err).Msg("contribution solve failed")
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, sol)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, calc.ErrDidNotConverge):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("internal error")
		msg = http.StatusText(status)
	}
	writeJSON(w, r, status, errorResponse{Status: status, Message: msg})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}
