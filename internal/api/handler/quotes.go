package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/orcafacil/orcafacil-api/internal/domain"
	"github.com/orcafacil/orcafacil-api/internal/usecases/quoting"
	"github.com/orcafacil/orcafacil-api/pkg/apiErrors"
	"github.com/orcafacil/orcafacil-api/pkg/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type UpdateQuoteStatusRequest struct {
	Status domain.QuoteStatus `json:"status"`
}

func CreateQuote(service quoting.Quoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var input quoting.CreateQuoteInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		quote, err := service.CreateQuote(userClaims.CompanyID, input)
		if err != nil {
			handleQuoteError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(quote)
	}
}

func ListQuotes(service quoting.Quoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		quotes, err := service.ListQuotes(userClaims.CompanyID, limit, offset)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar orçamentos")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar orçamentos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(quotes)
	}
}

func GetQuote(service quoting.Quoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		quoteID, err := quoteIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do orçamento inválido", nil)
			return
		}

		quote, err := service.GetQuote(userClaims.CompanyID, quoteID)
		if err != nil {
			handleQuoteError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(quote)
	}
}

// UpdateQuoteStatus aplica uma transição de status no orçamento
func UpdateQuoteStatus(service quoting.Quoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		quoteID, err := quoteIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do orçamento inválido", nil)
			return
		}

		var req UpdateQuoteStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		quote, err := service.UpdateQuoteStatus(userClaims.CompanyID, quoteID, req.Status)
		if err != nil {
			handleQuoteError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(quote)
	}
}

// GetQuotePDF gera e retorna o PDF do orçamento. Rota exclusiva do plano
// premium; o gate fica no middleware da rota.
func GetQuotePDF(service quoting.Quoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		quoteID, err := quoteIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do orçamento inválido", nil)
			return
		}

		data, err := service.GenerateQuotePDF(userClaims.CompanyID, quoteID)
		if err != nil {
			handleQuoteError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=orcamento-%d.pdf", quoteID))
		if _, err := w.Write(data); err != nil {
			logrus.WithError(err).Error("Erro ao enviar PDF do orçamento")
		}
	}
}

func quoteIDFromRequest(r *http.Request) (int, error) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	return strconv.Atoi(idStr)
}

func handleQuoteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quoting.ErrQuoteNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Orçamento não encontrado", nil)

	case errors.Is(err, quoting.ErrClientNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Cliente não encontrado", nil)

	case errors.Is(err, quoting.ErrServiceNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Serviço não encontrado", nil)

	case errors.Is(err, quoting.ErrNoItems), errors.Is(err, quoting.ErrInvalidQuantity):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, quoting.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, quoting.ErrInvalidTransition):
		apiErrors.WriteError(w, apiErrors.ErrInvalidTransition, err.Error(), nil)

	default:
		logrus.WithError(err).Error("Erro ao processar orçamento")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar orçamento", nil)
	}
}
