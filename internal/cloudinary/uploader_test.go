package cloudinary

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type fakeAPI struct {
	params uploader.UploadParams
	body   string
	result *uploader.UploadResult
	err    error
}

func (f *fakeAPI) Upload(_ context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	f.params = params
	if r, ok := file.(io.Reader); ok {
		data, _ := io.ReadAll(r)
		f.body = string(data)
	}
	return f.result, f.err
}

func TestUploadStream_Success(t *testing.T) {
	api := &fakeAPI{result: &uploader.UploadResult{SecureURL: "https://res.cloudinary.com/demo/video/upload/a.mp3"}}
	u := &Uploader{api: api, folder: "studynotes"}

	url, err := u.UploadStream(context.Background(), strings.NewReader("mp3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://res.cloudinary.com/demo/video/upload/a.mp3" {
		t.Errorf("unexpected url %q", url)
	}
	if api.params.ResourceType != "auto" {
		t.Errorf("expected resource type auto, got %q", api.params.ResourceType)
	}
	if api.params.Folder != "studynotes" {
		t.Errorf("expected folder studynotes, got %q", api.params.Folder)
	}
	if api.body != "mp3" {
		t.Errorf("expected reader to be passed through, got %q", api.body)
	}
}

func TestUploadStream_TransportError(t *testing.T) {
	boom := errors.New("dial tcp: timeout")
	u := &Uploader{api: &fakeAPI{err: boom}}

	if _, err := u.UploadStream(context.Background(), strings.NewReader("x")); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
}

func TestUploadStream_APIErrorBody(t *testing.T) {
	res := &uploader.UploadResult{}
	res.Error.Message = "Invalid Signature"
	u := &Uploader{api: &fakeAPI{result: res}}

	_, err := u.UploadStream(context.Background(), strings.NewReader("x"))
	if err == nil || !strings.Contains(err.Error(), "Invalid Signature") {
		t.Fatalf("expected api error message, got %v", err)
	}
}

func TestUploadStream_EmptyURL(t *testing.T) {
	u := &Uploader{api: &fakeAPI{result: &uploader.UploadResult{}}}

	if _, err := u.UploadStream(context.Background(), strings.NewReader("x")); err == nil {
		t.Fatal("expected error for empty secure_url")
	}
}
