package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/graph-gophers/graphql-go"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"

	apierrors "memberhub/internal/errors"
	"memberhub/internal/graph"
	"memberhub/internal/loaders"
	"memberhub/internal/store"
	"memberhub/pkg/logging"
	"memberhub/pkg/middleware"
)

type GraphQLRequest struct {
	Query         string                 `json:"query" binding:"required"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

type GraphQLHandler struct {
	schema   *graph.Schema
	store    store.Store
	maxDepth int
	logger   logging.Logger
	metrics  *GraphQLMetrics
}

// NewGraphQLHandler serves schema over st. maxDepth <= 0 disables the depth limit.
func NewGraphQLHandler(
	schema *graph.Schema,
	st store.Store,
	maxDepth int,
	logger logging.Logger,
	metrics *GraphQLMetrics,
) *GraphQLHandler {
	return &GraphQLHandler{
		schema:   schema,
		store:    st,
		maxDepth: maxDepth,
		logger:   logger,
		metrics:  metrics,
	}
}

// Register mounts the handler on /graphql and on the legacy root route.
func (h *GraphQLHandler) Register(r gin.IRoutes) {
	r.POST("/graphql", h.Handle)
	r.POST("/", h.Handle)
}

func (h *GraphQLHandler) Handle(c *gin.Context) {
	start := time.Now()
	log := middleware.GetContextLogger(c, h.logger)

	req, err := decodeGraphQLRequest(c.Request.Body)
	if err != nil {
		h.metrics.IncOperation(unknownOperation, "bad_request")
		log.WithError(err).Debug("Rejected GraphQL request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	op := inspectOperation(req.Query, req.OperationName)
	log = log.WithFields(logging.Fields{
		"operation_type": op.Type,
		"operation_name": op.Name,
	})

	if h.maxDepth > 0 && op.Depth > h.maxDepth {
		h.metrics.IncOperation(op.Type, "rejected")
		log.WithField("depth", op.Depth).Warn("GraphQL query exceeds depth limit")
		qe := gqlerrors.Errorf("query exceeds maximum depth of %d (got %d)", h.maxDepth, op.Depth)
		qe.Extensions = map[string]interface{}{"code": apierrors.CodeInvalidArgument}
		c.JSON(http.StatusOK, &graphql.Response{Errors: []*gqlerrors.QueryError{qe}})
		return
	}

	session := graph.NewSession(h.store, log, loaders.Options{Observe: h.metrics.ObserveBatch})
	resp := h.schema.Exec(c.Request.Context(), session, req.Query, req.OperationName, req.Variables)

	status := "success"
	if len(resp.Errors) > 0 {
		status = "error"
		log.WithField("errors", len(resp.Errors)).Debug("GraphQL operation completed with errors")
	}
	h.metrics.IncOperation(op.Type, status)
	h.metrics.ObserveDuration(op.Type, time.Since(start))

	c.JSON(http.StatusOK, resp)
}

// decodeGraphQLRequest accepts exactly one JSON object with the query,
// variables and operationName members.
func decodeGraphQLRequest(body io.Reader) (*GraphQLRequest, error) {
	if body == nil {
		return nil, errors.New("request body is empty")
	}

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	var req GraphQLRequest
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("request body is empty")
		}
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("request body must contain a single JSON object")
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		return nil, err
	}
	return &req, nil
}
