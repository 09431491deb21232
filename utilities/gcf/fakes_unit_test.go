// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gcf

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/BrunoReboul/gcfdeploy/utilities/deploy"
	"github.com/BrunoReboul/gcfdeploy/utilities/logging"
	"github.com/BrunoReboul/gcfdeploy/utilities/solution"
	"go.uber.org/zap/zapcore"
	"google.golang.org/api/cloudfunctions/v1"
)

type fakeFunctionsService struct {
	function        *cloudfunctions.CloudFunction
	getErr          error
	uploadURL       string
	generateErr     error
	generateParents []string
	patchErr        error
	patchOperation  *cloudfunctions.Operation
	patchedName     string
	patchedFunction *cloudfunctions.CloudFunction
	operations      []*cloudfunctions.Operation
	getOperationErr error
	zipOnPatch      string
}

func (f *fakeFunctionsService) Get(ctx context.Context, name string) (*cloudfunctions.CloudFunction, error) {
	return f.function, f.getErr
}

func (f *fakeFunctionsService) GenerateUploadURL(ctx context.Context, parent string) (string, error) {
	f.generateParents = append(f.generateParents, parent)
	return f.uploadURL, f.generateErr
}

func (f *fakeFunctionsService) Patch(ctx context.Context, name string, cloudFunction *cloudfunctions.CloudFunction) (*cloudfunctions.Operation, error) {
	f.patchedName = name
	copied := *cloudFunction
	f.patchedFunction = &copied
	return f.patchOperation, f.patchErr
}

func (f *fakeFunctionsService) GetOperation(ctx context.Context, name string) (*cloudfunctions.Operation, error) {
	if f.getOperationErr != nil {
		return nil, f.getOperationErr
	}
	operation := f.operations[0]
	if len(f.operations) > 1 {
		f.operations = f.operations[1:]
	}
	return operation, nil
}

type fakeArchiveStore struct {
	bucketName string
	objectName string
	content    []byte
	uploadErr  error
	closed     bool
}

func (f *fakeArchiveStore) Upload(ctx context.Context, bucketName, objectName string, content io.Reader) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.bucketName = bucketName
	f.objectName = objectName
	var err error
	f.content, err = io.ReadAll(content)
	return err
}

func (f *fakeArchiveStore) Close() error {
	f.closed = true
	return nil
}

type recordedPut struct {
	mu                 sync.Mutex
	method             string
	path               string
	contentType        string
	contentLengthRange string
	body               []byte
}

// newUploadServer answers every request with statusCode and records it
func newUploadServer(t *testing.T, statusCode int) (*httptest.Server, *recordedPut) {
	recorded := &recordedPut{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorded.mu.Lock()
		defer recorded.mu.Unlock()
		recorded.method = r.Method
		recorded.path = r.URL.Path
		recorded.contentType = r.Header.Get("content-type")
		recorded.contentLengthRange = r.Header.Get("x-goog-content-length-range")
		recorded.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(statusCode)
		w.Write([]byte("<Error>body</Error>"))
	}))
	t.Cleanup(server.Close)
	return server, recorded
}

// newSourceDirectory creates a small function source tree
func newSourceDirectory(t *testing.T) string {
	directory := t.TempDir()
	files := map[string]string{
		"main.go":         "package main\n",
		"lib/helper.go":   "package lib\n",
		"lib/go.mod.tmpl": "module x\n",
	}
	for name, content := range files {
		path := filepath.Join(directory, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return directory
}

func newTestSettings(directory string) solution.Settings {
	return solution.Settings{
		ProjectID:         "my-project",
		Region:            "europe-west1",
		FunctionName:      "my-function",
		FunctionDirectory: directory,
		Credentials:       "{}",
		Debug:             true,
	}
}

func newTestCore(settings solution.Settings, buffer *bytes.Buffer) *deploy.Core {
	logger := logging.NewLoggerTo(zapcore.AddSync(buffer), settings.Debug)
	return deploy.NewCore(context.Background(), settings, logger)
}
