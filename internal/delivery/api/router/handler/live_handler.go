package handler

import (
	"market/internal/delivery/api/response"
	"market/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LiveHandlerParams holds dependencies for LiveHandler, injected by Fx.
type LiveHandlerParams struct {
	fx.In

	Collections *impl.LiveCollections
}

// LiveHandler exposes the snapshots held by the live collections.
type LiveHandler struct {
	collections *impl.LiveCollections
}

// NewLiveHandler is the constructor for LiveHandler
func NewLiveHandler(params LiveHandlerParams) *LiveHandler {
	return &LiveHandler{collections: params.Collections}
}

// LiveSnapshot is the current content of one live collection
type LiveSnapshot struct {
	Collection string `json:"collection"`
	Running    bool   `json:"running"`
	Error      string `json:"error,omitempty"`
	Items      any    `json:"items"`
}

func snapshotOf[T any](name string, collection *impl.LiveCollection[T]) LiveSnapshot {
	snapshot := LiveSnapshot{
		Collection: name,
		Running:    collection.Running(),
		Items:      collection.Snapshot(),
	}
	if err := collection.Err(); err != nil {
		snapshot.Error = err.Error()
	}

	return snapshot
}

// Snapshot returns the latest snapshot of the named collection
func (h *LiveHandler) Snapshot(c echo.Context) error {
	var snapshot LiveSnapshot

	switch name := c.Param("collection"); name {
	case "offers":
		snapshot = snapshotOf(name, h.collections.Offers)
	case "products":
		snapshot = snapshotOf(name, h.collections.Products)
	case "users":
		snapshot = snapshotOf(name, h.collections.Users)
	case "authorizations":
		snapshot = snapshotOf(name, h.collections.Authorizations)
	case "alerts":
		snapshot = snapshotOf(name, h.collections.Alerts)
	case "news":
		snapshot = snapshotOf(name, h.collections.News)
	default:
		return response.NotFound(c, "COLLECTION_NOT_FOUND", "Unknown live collection")
	}

	return response.OK(c, snapshot)
}
