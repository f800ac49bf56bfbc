package dashboarding

import "errors"

var (
	// ErrCompanyRequired indica que o usuário autenticado não tem empresa
	// vinculada. É distinto de "nenhum dado no período": sem a chave de
	// escopo a agregação não pode nem ser tentada.
	ErrCompanyRequired = errors.New("usuário sem empresa vinculada")

	// ErrOverviewFailed é o erro genérico exposto quando a agregação falha
	ErrOverviewFailed = errors.New("erro ao montar o overview do dashboard")
)
