package pricing

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"PrecoMateriais/internal/catalog"
	"PrecoMateriais/pkg/kit"
)

const usageExample = "/preco?materiais=Couro Bovino, Couro de Tilápia, Jeans"

type Server struct {
	Catalog       *catalog.Catalog
	Pricing       *Service
	SourceURL     string
	Log           *zap.Logger
	ReloadLimiter *kit.IPRateLimiter
}

type healthResp struct {
	OK      bool   `json:"ok"`
	Size    int    `json:"materiais_catalogo"`
	Example string `json:"exemplo"`
}

type materialsResp struct {
	Items []string `json:"itens"`
	Total int      `json:"total"`
}

type reloadResp struct {
	OK   bool `json:"ok"`
	Size int  `json:"materiais_catalogo"`
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", s.readyz)

	r.Get("/health", s.health)
	r.Get("/materiais", s.materials)
	r.With(s.ReloadLimiter.Middleware).Post("/reload", s.reload)
	r.Get("/preco", s.price)

	return r
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	if !s.Catalog.Ready() {
		kit.WriteError(w, r, http.StatusServiceUnavailable, "catálogo ainda não carregado", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, healthResp{
		OK:      true,
		Size:    s.Catalog.Size(),
		Example: usageExample,
	})
}

func (s *Server) materials(w http.ResponseWriter, _ *http.Request) {
	items := s.Catalog.List()
	kit.WriteJSON(w, http.StatusOK, materialsResp{Items: items, Total: len(items)})
}

func (s *Server) reload(w http.ResponseWriter, r *http.Request) {
	_, err := s.Catalog.Load(r.Context(), s.SourceURL)
	size := s.Catalog.Size()

	switch {
	case err == nil:
		kit.WriteJSON(w, http.StatusOK, reloadResp{OK: true, Size: size})
	case errors.Is(err, catalog.ErrNotConfigured):
		kit.WriteError(w, r, http.StatusServiceUnavailable, "MATERIAIS_URL não definido",
			map[string]any{"ok": false, "materiais_catalogo": size})
	case errors.Is(err, catalog.ErrFetchFailed):
		kit.WriteError(w, r, http.StatusBadGateway, "falha ao baixar planilha de materiais",
			map[string]any{"ok": false, "materiais_catalogo": size})
	case errors.Is(err, catalog.ErrDecodeFailed):
		kit.WriteError(w, r, http.StatusBadGateway, "planilha de materiais ilegível",
			map[string]any{"ok": false, "materiais_catalogo": size})
	default:
		if s.Log != nil {
			s.Log.Error("reload failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "erro interno",
			map[string]any{"ok": false, "materiais_catalogo": size})
	}
}

func (s *Server) price(w http.ResponseWriter, r *http.Request) {
	res, err := s.Pricing.Price(r.URL.Query().Get("materiais"))
	if err != nil {
		s.writePriceError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, res)
}

func (s *Server) writePriceError(w http.ResponseWriter, r *http.Request, err error) {
	var unknown *UnknownMaterialsError
	switch {
	case errors.As(err, &unknown):
		kit.WriteError(w, r, http.StatusNotFound, "Alguns materiais não existem no catálogo",
			map[string]any{"materiais_desconhecidos": unknown.Materials})
	case errors.Is(err, ErrEmptyInput):
		kit.WriteError(w, r, http.StatusBadRequest, "Materiais não informados", nil)
	case errors.Is(err, ErrNoValidItems):
		kit.WriteError(w, r, http.StatusBadRequest, "Nenhum material válido informado", nil)
	case errors.Is(err, ErrPriceOverflow):
		kit.WriteError(w, r, http.StatusBadRequest, "Soma dos preços excede o limite suportado", nil)
	default:
		if s.Log != nil {
			s.Log.Error("price failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "erro interno", nil)
	}
}
