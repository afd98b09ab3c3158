package earning

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	aliexpressdomain "github.com/vfg2006/affiliate-earnings-api/infrastructure/integrator/aliexpress/domain"
	"github.com/vfg2006/affiliate-earnings-api/internal/credentials"
)

// FailureKind classifica a falha de um ciclo de atualização
type FailureKind string

const (
	FailureConfiguration FailureKind = "configuration"
	FailureTransport     FailureKind = "transport"
	FailureFormat        FailureKind = "format"
	FailureCanceled      FailureKind = "canceled"
)

// ErrCycleInFlight indica que já existe um ciclo em andamento. O chamador
// deve simplesmente pular a execução: o próximo tick tenta de novo.
var ErrCycleInFlight = errors.New("ciclo de atualização já em andamento")

// CycleError envolve a causa de um ciclo abortado com sua classificação.
// Nenhuma variante é fatal para o processo: o sistema degrada para snapshot
// desatualizado em vez de encerrar.
type CycleError struct {
	Kind FailureKind
	Err  error
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("ciclo de atualização abortado (%s): %v", e.Kind, e.Err)
}

func (e *CycleError) Unwrap() error {
	return e.Err
}

// classifyError traduz as falhas das camadas de baixo para a taxonomia do
// ciclo
func classifyError(err error) *CycleError {
	if errors.Is(err, credentials.ErrNotConfigured) {
		return &CycleError{Kind: FailureConfiguration, Err: err}
	}

	var formatErr *aliexpressdomain.FormatError
	if errors.As(err, &formatErr) {
		return &CycleError{Kind: FailureFormat, Err: err}
	}

	// Desligamento no meio do ciclo: abandona sem mutação
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &CycleError{Kind: FailureCanceled, Err: err}
	}

	var transportErr *aliexpressdomain.TransportError
	if errors.As(err, &transportErr) {
		return &CycleError{Kind: FailureTransport, Err: err}
	}

	return &CycleError{Kind: FailureTransport, Err: err}
}
