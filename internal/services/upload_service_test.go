package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"autoescuelas/internal/models/response_models"
	"autoescuelas/pkg/utils"
)

type fakeImageBackend struct {
	calls  int
	folder string
	result *response_models.UploadResult
	err    error
}

func (f *fakeImageBackend) Upload(ctx context.Context, file io.Reader, folder string) (*response_models.UploadResult, error) {
	f.calls++
	f.folder = folder
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func TestUploadRejectsBeforeBackend(t *testing.T) {
	cases := []struct {
		name        string
		file        io.Reader
		contentType string
		size        int64
		wantErr     error
	}{
		{"missing file", nil, "image/png", 100, utils.ErrFileMissing},
		{"pdf rejected", strings.NewReader("x"), "application/pdf", 100, utils.ErrUnsupportedFile},
		{"gif rejected", strings.NewReader("x"), "image/gif", 100, utils.ErrUnsupportedFile},
		{"oversize rejected", strings.NewReader("x"), "image/jpeg", MaxUploadBytes + 1, utils.ErrFileTooLarge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			backend := &fakeImageBackend{}
			svc := NewUploadService(backend)

			_, err := svc.UploadImage(context.Background(), tc.file, tc.contentType, tc.size, "autoescuelas")
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if backend.calls != 0 {
				t.Fatal("backend was invoked despite a rejected upload")
			}
		})
	}
}

func TestUploadAcceptedTypes(t *testing.T) {
	for _, ct := range []string{"image/jpeg", "image/png", "image/webp"} {
		backend := &fakeImageBackend{result: &response_models.UploadResult{
			URL:      "https://res.example.com/foto.jpg",
			PublicID: "autoescuelas/foto",
		}}
		svc := NewUploadService(backend)

		result, err := svc.UploadImage(context.Background(), strings.NewReader("data"), ct, 1024, "fotos")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", ct, err)
		}
		if backend.calls != 1 {
			t.Fatalf("%s: backend calls = %d", ct, backend.calls)
		}
		if backend.folder != "fotos" {
			t.Errorf("%s: folder = %q", ct, backend.folder)
		}
		if result.PublicID != "autoescuelas/foto" {
			t.Errorf("%s: publicId = %q", ct, result.PublicID)
		}
	}
}

func TestUploadBackendFailure(t *testing.T) {
	backend := &fakeImageBackend{err: errors.New("cdn down")}
	svc := NewUploadService(backend)

	_, err := svc.UploadImage(context.Background(), strings.NewReader("data"), "image/png", 1024, "")
	if !errors.Is(err, utils.ErrUploadError) {
		t.Fatalf("err = %v, want ErrUploadError", err)
	}
}
