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

package deploycli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"github.com/BrunoReboul/gcfdeploy/utilities/aut"
	"github.com/BrunoReboul/gcfdeploy/utilities/gcf"
	"github.com/BrunoReboul/gcfdeploy/utilities/gcs"
	"github.com/BrunoReboul/gcfdeploy/utilities/solution"
	"google.golang.org/api/cloudfunctions/v1"
)

// ConnectGoogleServices authenticates with the service account key from settings
// and builds the cloud functions and cloud storage clients
func ConnectGoogleServices(ctx context.Context, settings solution.Settings) (*gcf.Services, error) {
	creds, err := aut.GetCredentialsFromJSON(ctx, settings.Credentials)
	if err != nil {
		return nil, err
	}
	clientOption := aut.GetClientOption(creds)

	cloudfunctionsService, err := cloudfunctions.NewService(ctx, clientOption)
	if err != nil {
		return nil, fmt.Errorf("cloudfunctions.NewService %v", err)
	}
	storageClient, err := storage.NewClient(ctx, clientOption)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient %v", err)
	}
	return &gcf.Services{
		Functions: gcf.NewFunctionsService(cloudfunctionsService),
		Archives:  gcs.NewArchiveStore(storageClient),
		HTTPClient: newSignedURLClient(),
	}, nil
}

// signedURLUploadTimeout covers a 100 MiB archive on a slow link
const signedURLUploadTimeout = 15 * time.Minute

// newSignedURLClient the signed URL carries its own authorization
func newSignedURLClient() *http.Client {
	return &http.Client{Timeout: signedURLUploadTimeout}
}
