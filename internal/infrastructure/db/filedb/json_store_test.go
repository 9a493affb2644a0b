package filedb_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librarykit/lending-system/internal/core/domain"
	"github.com/librarykit/lending-system/internal/infrastructure/db/filedb"
)

func Test_BookStore_Load_Creates_Missing_File(t *testing.T) {
	// arrange
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "books.json")
	store := filedb.NewBookStore(path)

	// act
	books, err := store.LoadBooks(ctx)

	// assert
	require.NoError(t, err)
	assert.Empty(t, books)
	assert.NotNil(t, books)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func Test_BookStore_Roundtrip_Keeps_Order(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := filedb.NewBookStore(filepath.Join(t.TempDir(), "books.json"))
	books := []domain.Book{
		{ID: "B2", Title: "Dune", Author: "Frank Herbert", Available: false},
		{ID: "B1", Title: "Emma", Author: "Jane Austen", Available: true},
		{ID: "B3", Title: "Ulysses", Author: "James Joyce", Available: true},
	}

	// act
	require.NoError(t, store.SaveBooks(ctx, books))
	loaded, err := store.LoadBooks(ctx)

	// assert
	require.NoError(t, err)
	assert.Equal(t, books, loaded)
}

func Test_BookStore_Writes_Indented_Field_Names(t *testing.T) {
	// arrange
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "books.json")
	store := filedb.NewBookStore(path)

	// act
	require.NoError(t, store.SaveBooks(ctx, []domain.Book{{ID: "B1", Title: "T", Author: "A", Available: true}}))

	// assert
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n    {\n        \"id\": \"B1\"")
	assert.Contains(t, string(data), `"available": true`)
}

func Test_UserStore_Roundtrip_With_Loans(t *testing.T) {
	// arrange
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "users.json")
	store := filedb.NewUserStore(path)
	users := []domain.User{
		{ID: "U1", Name: "Ada", Type: domain.UserTypeStudent, Borrowed: []domain.Loan{
			{BookID: "B1", DueDate: domain.NewDate(2026, 3, 23)},
			{BookID: "B2", DueDate: domain.NewDate(2026, 3, 30)},
		}},
		{ID: "U2", Name: "Bob", Type: domain.UserTypeRegular, Borrowed: []domain.Loan{}},
	}

	// act
	require.NoError(t, store.SaveUsers(ctx, users))
	loaded, err := store.LoadUsers(ctx)

	// assert
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, users[0].ID, loaded[0].ID)
	assert.Equal(t, users[1].Type, loaded[1].Type)
	require.Len(t, loaded[0].Borrowed, 2)
	assert.Equal(t, "B2", loaded[0].Borrowed[1].BookID)
	assert.True(t, loaded[0].Borrowed[0].DueDate.Equal(domain.NewDate(2026, 3, 23)))
	assert.Empty(t, loaded[1].Borrowed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"due_date": "2026-03-23"`)
}

func Test_UserStore_Load_Fills_Missing_Loan_List(t *testing.T) {
	// arrange
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"U1","name":"Ada","type":"faculty"}]`), 0o644))

	// act
	users, err := filedb.NewUserStore(path).LoadUsers(ctx)

	// assert
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.NotNil(t, users[0].Borrowed)
	assert.Equal(t, domain.UserTypeFaculty, users[0].Type)
}

func Test_JSONStore_Load_Rejects_Malformed_File(t *testing.T) {
	// arrange
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "books.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"`), 0o644))

	// act
	_, err := filedb.NewJSONStore[domain.Book](path).Load(ctx)

	// assert
	assert.Error(t, err)
}

func Test_JSONStore_Load_Empty_File_Is_Empty_Collection(t *testing.T) {
	// arrange
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "books.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	// act
	books, err := filedb.NewJSONStore[domain.Book](path).Load(ctx)

	// assert
	require.NoError(t, err)
	assert.Empty(t, books)
}

func Test_JSONStore_Save_Fails_In_Missing_Directory(t *testing.T) {
	// arrange
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "missing", "books.json")

	// act
	err := filedb.NewJSONStore[domain.Book](path).Save(ctx, nil)

	// assert
	assert.Error(t, err)
}

func Test_JSONStore_Respects_Cancelled_Context(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := filedb.NewJSONStore[domain.Book](filepath.Join(t.TempDir(), "books.json"))

	// act
	_, loadErr := store.Load(ctx)
	saveErr := store.Save(ctx, nil)

	// assert
	assert.ErrorIs(t, loadErr, context.Canceled)
	assert.ErrorIs(t, saveErr, context.Canceled)
}

func Test_UserStore_Load_Rejects_Loans_Without_Due_Date(t *testing.T) {
	for name, loan := range map[string]string{
		"empty":  `{"book_id":"B1","due_date":""}`,
		"null":   `{"book_id":"B1","due_date":null}`,
		"absent": `{"book_id":"B1"}`,
	} {
		t.Run(name, func(t *testing.T) {
			// arrange
			path := filepath.Join(t.TempDir(), "users.json")
			data := `[{"id":"U1","name":"Ada","type":"student","borrowed":[` + loan + `]}]`
			require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

			// act
			_, err := filedb.NewUserStore(path).LoadUsers(context.Background())

			// assert
			require.ErrorIs(t, err, domain.ErrInvalidLoan)
			assert.Contains(t, err.Error(), `"U1"`)
			assert.Contains(t, err.Error(), `"B1"`)
		})
	}
}
