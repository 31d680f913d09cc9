package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lilykb/statusview/internal/keymap"
	"github.com/lilykb/statusview/internal/state"
	"github.com/lilykb/statusview/internal/view"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type statusResponse struct {
	Side      string `json:"side"`
	Layer     uint8  `json:"layer"`
	LayerName string `json:"layerName"`
	Mods      string `json:"mods"`
	ModsText  string `json:"modsText"`
	WPM       uint16 `json:"wpm"`
	Phase     string `json:"phase,omitempty"`
	BarValue  int    `json:"barValue,omitempty"`
}

// APIV1Deps are the read/write surfaces the status API exposes. Frame is
// optional; Primary and Secondary reflect which side this unit renders.
type APIV1Deps struct {
	Side      state.Side
	Store     *state.Store
	Layers    *keymap.Table
	Frame     func() ([]byte, error)
	Primary   func() (view.PrimarySnapshot, bool)
	Secondary func() (view.SecondarySnapshot, bool)
}

func apiV1Router(deps APIV1Deps) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) { handleStatus(w, r, deps) })
	mux.HandleFunc("/layers", func(w http.ResponseWriter, r *http.Request) { handleLayers(w, r, deps) })
	mux.HandleFunc("/frame.png", func(w http.ResponseWriter, r *http.Request) { handleFrame(w, r, deps) })
	return mux
}

func handleStatus(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	if deps.Store == nil {
		writeAPIError(w, http.StatusServiceUnavailable, "not_ready", "state store not configured")
		return
	}

	snap := deps.Store.Snapshot()
	resp := statusResponse{
		Side:     deps.Side.String(),
		Layer:    snap.Layer,
		Mods:     fmt.Sprintf("0x%02x", uint8(snap.Mods)),
		ModsText: keymap.FormatMods(snap.Mods),
		WPM:      snap.WPM,
	}
	if deps.Layers != nil {
		resp.LayerName = deps.Layers.Name(snap.Layer)
	}
	if deps.Primary != nil {
		if pv, ok := deps.Primary(); ok {
			resp.Phase = pv.Phase.String()
		}
	}
	if deps.Secondary != nil {
		if sv, ok := deps.Secondary(); ok {
			resp.BarValue = sv.Bar.Value
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleLayers(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if deps.Layers == nil {
		writeAPIError(w, http.StatusServiceUnavailable, "not_ready", "layer table not configured")
		return
	}
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, deps.Layers.Names())
	case http.MethodPut, http.MethodPost:
		var names []string
		if err := json.NewDecoder(r.Body).Decode(&names); err != nil {
			writeAPIError(w, http.StatusBadRequest, "bad_request", "body must be a JSON array of layer names")
			return
		}
		if len(names) == 0 {
			writeAPIError(w, http.StatusBadRequest, "bad_request", "layer name list must not be empty")
			return
		}
		deps.Layers.SetNames(names)
		writeJSON(w, http.StatusOK, okResponse{OK: true})
	default:
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	}
}

func handleFrame(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	if deps.Frame == nil {
		writeAPIError(w, http.StatusNotFound, "not_found", "frame preview not available on this renderer")
		return
	}
	data, err := deps.Frame()
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
