package aliexpressdomain

import "fmt"

// TransportError representa uma falha de rede ou HTTP ao alcançar a API do
// AliExpress. O ciclo que a recebe é abortado e o snapshot anterior permanece.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("falha de transporte na API do AliExpress (%s): %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// FormatError representa uma resposta sem a estrutura esperada. A resposta
// bruta é preservada para diagnóstico no log do chamador.
type FormatError struct {
	Message     string
	RawResponse []byte
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("resposta da API do AliExpress em formato inesperado: %s", e.Message)
}
