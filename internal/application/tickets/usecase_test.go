package tickets_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuerpodebomberos/intranet-api/internal/application/dto"
	"github.com/cuerpodebomberos/intranet-api/internal/application/tickets"
	"github.com/cuerpodebomberos/intranet-api/internal/domain"
	"github.com/cuerpodebomberos/intranet-api/internal/domain/entity"
)

type fakeTicketRepo struct {
	tickets map[string]*entity.Ticket
}

func (r *fakeTicketRepo) Create(t *entity.Ticket) error { r.tickets[t.ID] = t; return nil }
func (r *fakeTicketRepo) GetByID(id string) (*entity.Ticket, error) {
	return r.tickets[id], nil
}
func (r *fakeTicketRepo) ListByCompany(companyID, status string, _, _ int) ([]*entity.Ticket, error) {
	var out []*entity.Ticket
	for _, t := range r.tickets {
		if t.CompanyID != companyID {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
func (r *fakeTicketRepo) Update(t *entity.Ticket) error { r.tickets[t.ID] = t; return nil }

type fakeFileStore struct {
	saved   map[string]string // nombre → contenido
	lastErr error
}

func (s *fakeFileStore) Save(filename string, r io.Reader) (string, error) {
	if s.lastErr != nil {
		return "", s.lastErr
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.saved[filename] = string(raw)
	return "adjuntos/" + filename, nil
}

func setup() (*tickets.UseCase, *fakeTicketRepo, *fakeFileStore) {
	repo := &fakeTicketRepo{tickets: make(map[string]*entity.Ticket)}
	files := &fakeFileStore{saved: make(map[string]string)}
	return tickets.NewUseCase(repo, files), repo, files
}

func TestCreate_SinAdjunto(t *testing.T) {
	uc, _, files := setup()
	ticket, err := uc.Create("cia-1", "usr-1", dto.CreateTicketRequest{
		Subject:     "Impresora del cuartel sin tóner",
		Description: "segunda vez este mes",
	}, "", nil)
	require.NoError(t, err)

	assert.Equal(t, entity.TicketOpen, ticket.Status)
	assert.Empty(t, ticket.AttachmentPath)
	assert.Empty(t, files.saved)
}

// El adjunto se guarda antes de persistir el ticket.
func TestCreate_ConAdjunto(t *testing.T) {
	uc, _, files := setup()
	ticket, err := uc.Create("cia-1", "usr-1", dto.CreateTicketRequest{
		Subject: "Fuga en sala de bombas",
	}, "foto.jpg", strings.NewReader("jpegdata"))
	require.NoError(t, err)

	assert.Equal(t, "adjuntos/foto.jpg", ticket.AttachmentPath)
	assert.Equal(t, "jpegdata", files.saved["foto.jpg"])
}

// Si el almacenamiento falla el ticket no se crea.
func TestCreate_FallaAdjunto_NoCrea(t *testing.T) {
	uc, repo, files := setup()
	files.lastErr = errors.New("disco lleno")

	_, err := uc.Create("cia-1", "usr-1", dto.CreateTicketRequest{
		Subject: "Fuga",
	}, "foto.jpg", strings.NewReader("jpegdata"))
	require.Error(t, err)
	assert.Empty(t, repo.tickets)
}

func TestCreate_SinAsunto(t *testing.T) {
	uc, _, _ := setup()
	_, err := uc.Create("cia-1", "usr-1", dto.CreateTicketRequest{}, "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTicket_CicloCompleto(t *testing.T) {
	uc, _, _ := setup()
	ticket, err := uc.Create("cia-1", "usr-1", dto.CreateTicketRequest{Subject: "Radio base muda"}, "", nil)
	require.NoError(t, err)

	// Cerrar sin asignar es transición inválida.
	_, err = uc.Close("cia-1", ticket.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	assigned, err := uc.Assign("cia-1", "tec-1", ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TicketInProgress, assigned.Status)
	assert.Equal(t, "tec-1", assigned.AssignedTo)

	// Asignar dos veces también.
	_, err = uc.Assign("cia-1", "tec-2", ticket.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	closed, err := uc.Close("cia-1", ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TicketClosed, closed.Status)
}

func TestTicket_OtraCompania_Prohibido(t *testing.T) {
	uc, _, _ := setup()
	ticket, err := uc.Create("cia-1", "usr-1", dto.CreateTicketRequest{Subject: "Radio"}, "", nil)
	require.NoError(t, err)

	_, err = uc.GetByID("cia-2", ticket.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestList_FiltraPorEstado(t *testing.T) {
	uc, _, _ := setup()
	a, err := uc.Create("cia-1", "usr-1", dto.CreateTicketRequest{Subject: "A"}, "", nil)
	require.NoError(t, err)
	_, err = uc.Create("cia-1", "usr-1", dto.CreateTicketRequest{Subject: "B"}, "", nil)
	require.NoError(t, err)
	_, err = uc.Assign("cia-1", "tec-1", a.ID)
	require.NoError(t, err)

	inProgress, err := uc.List("cia-1", entity.TicketInProgress, 50, 0)
	require.NoError(t, err)
	require.Len(t, inProgress, 1)
	assert.Equal(t, a.ID, inProgress[0].ID)
}
