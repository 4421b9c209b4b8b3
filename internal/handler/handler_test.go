package handler

import (
	"html/template"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/itchan-dev/minichan/internal/config"
	"github.com/itchan-dev/minichan/internal/domain"
	internal_errors "github.com/itchan-dev/minichan/internal/errors"

	"github.com/gorilla/mux"
)

// Shared test fixtures: function-field mocks for every service the
// handler depends on, a router wired like the real one, and templates
// small enough to assert against.

type MockBoardService struct {
	MockCreate  func(data domain.BoardCreationData) (domain.Board, error)
	MockGet     func(name domain.BoardName) (domain.Board, error)
	MockGetAll  func() ([]domain.Board, error)
	MockGetPage func(name domain.BoardName, page int) (domain.BoardPage, error)
	MockDelete  func(name domain.BoardName) error
}

func (m *MockBoardService) Create(data domain.BoardCreationData) (domain.Board, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return domain.Board{Name: data.Name}, nil
}

func (m *MockBoardService) Get(name domain.BoardName) (domain.Board, error) {
	if m.MockGet != nil {
		return m.MockGet(name)
	}
	return domain.Board{Name: name}, nil
}

func (m *MockBoardService) GetAll() ([]domain.Board, error) {
	if m.MockGetAll != nil {
		return m.MockGetAll()
	}
	return nil, nil
}

func (m *MockBoardService) GetPage(name domain.BoardName, page int) (domain.BoardPage, error) {
	if m.MockGetPage != nil {
		return m.MockGetPage(name, page)
	}
	return domain.BoardPage{Board: domain.Board{Name: name}, Page: page}, nil
}

func (m *MockBoardService) Delete(name domain.BoardName) error {
	if m.MockDelete != nil {
		return m.MockDelete(name)
	}
	return nil
}

type MockThreadService struct {
	MockCreate func(data domain.ThreadCreationData) (domain.ThreadId, domain.PostId, error)
	MockGet    func(board domain.BoardName, id domain.ThreadId) (domain.Thread, error)
}

func (m *MockThreadService) Create(data domain.ThreadCreationData) (domain.ThreadId, domain.PostId, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return 1, 1, nil
}

func (m *MockThreadService) Get(board domain.BoardName, id domain.ThreadId) (domain.Thread, error) {
	if m.MockGet != nil {
		return m.MockGet(board, id)
	}
	return domain.Thread{}, nil
}

type MockPostService struct {
	MockCreate func(threadID domain.ThreadId, data domain.PostCreationData) (domain.Post, error)
}

func (m *MockPostService) Create(threadID domain.ThreadId, data domain.PostCreationData) (domain.Post, error) {
	if m.MockCreate != nil {
		return m.MockCreate(threadID, data)
	}
	return domain.Post{ThreadId: threadID, Number: 2}, nil
}

type MockMediaService struct {
	MockStore func(header *multipart.FileHeader) (*domain.Attachment, error)
}

func (m *MockMediaService) Store(header *multipart.FileHeader) (*domain.Attachment, error) {
	if m.MockStore != nil {
		return m.MockStore(header)
	}
	return nil, nil
}

// passthroughRenderer echoes comments so tests can assert on content.
type passthroughRenderer struct{}

func (passthroughRenderer) Render(comment string) template.HTML {
	return template.HTML(template.HTMLEscapeString(comment))
}

func testTemplates() map[string]*template.Template {
	templates := make(map[string]*template.Template)
	pages := map[string]string{
		"index.html":        `index {{range .Data.Boards}}[{{.Name}}]{{end}} err={{.Common.Error}}`,
		"board.html":        `board /{{.Data.Board.Name}}/ page={{.Data.Page}} more={{.Data.HasMore}} {{range .Data.Threads}}<t>{{.Subject}} n={{.PostCount}} omitted={{.OmittedPosts}} {{range .Posts}}<p class="{{.CSSClass}}">{{.CommentHTML}}</p>{{end}}</t>{{end}} err={{.Common.Error}}`,
		"thread.html":       `thread {{.Data.Thread.Subject}} on /{{.Data.Board.Name}}/ {{range .Data.Thread.Posts}}<p>No.{{.Number}} {{.CommentHTML}}</p>{{end}} err={{.Common.Error}}`,
		"create_board.html": `create_board {{range .Data.Boards}}[{{.Name}}]{{end}} err={{.Common.Error}}`,
		"error.html":        `error {{.Data.Status}}: {{.Data.Message}}`,
	}
	for name, body := range pages {
		templates[name] = template.Must(template.New("base.html").Parse(body))
	}
	return templates
}

func testConfig() config.Public {
	return config.Public{
		Port:           "8080",
		ThreadsPerPage: 10,
		PreviewPosts:   5,
		MaxUploadBytes: 5 << 20,
	}
}

type testServices struct {
	board  *MockBoardService
	thread *MockThreadService
	post   *MockPostService
	media  *MockMediaService
}

func newTestHandler() (*Handler, *testServices) {
	services := &testServices{
		board:  &MockBoardService{},
		thread: &MockThreadService{},
		post:   &MockPostService{},
		media:  &MockMediaService{},
	}
	h := New(services.board, services.thread, services.post, services.media, passthroughRenderer{}, testTemplates(), testConfig())
	return h, services
}

// testRouter mirrors the real route table closely enough for mux.Vars.
func testRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", h.Index).Methods("GET")
	r.HandleFunc("/healthz", h.Health).Methods("GET")
	r.HandleFunc("/admin/create_board", h.CreateBoardForm).Methods("GET")
	r.HandleFunc("/admin/create_board", h.CreateBoard).Methods("POST")
	r.HandleFunc("/admin/delete_board", h.DeleteBoard).Methods("POST")
	r.HandleFunc("/{board:[a-z0-9]+}/", h.Board).Methods("GET")
	r.HandleFunc("/{board:[a-z0-9]+}/thread/{thread:[0-9]+}", h.Thread).Methods("GET")
	r.HandleFunc("/{board:[a-z0-9]+}/post", h.CreatePost).Methods("POST")
	return r
}

func notFoundErr(message string) error {
	return &internal_errors.ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

func conflictErr(message string) error {
	return &internal_errors.ErrorWithStatusCode{Message: message, StatusCode: http.StatusConflict}
}

func formBody(encoded string) io.Reader {
	return strings.NewReader(encoded)
}
