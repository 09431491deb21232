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
	"net/http"

	"github.com/BrunoReboul/gcfdeploy/utilities/gcs"
)

// HTTPDoer sends the signed url PUT, *http.Client satisfies it
type HTTPDoer interface {
	Do(request *http.Request) (*http.Response, error)
}

// Services remote collaborators of a function deployment
type Services struct {
	Functions  FunctionsService
	Archives   gcs.ArchiveStore
	HTTPClient HTTPDoer
}

// Close releases the storage client
func (services *Services) Close() error {
	if services.Archives == nil {
		return nil
	}
	return services.Archives.Close()
}
