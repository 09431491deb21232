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

package aut

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BrunoReboul/gcfdeploy/utilities/erm"
	"golang.org/x/oauth2/google"
)

// CloudPlatformScope is enough for both cloud functions and cloud storage APIs
const CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// GetCredentialsFromJSON build service account credentials from a json key. No network call
func GetCredentialsFromJSON(ctx context.Context, credentialsJSON string) (credentials *google.Credentials, err error) {
	var key keyConsoleFormat
	err = json.Unmarshal([]byte(credentialsJSON), &key)
	if err != nil {
		return nil, fmt.Errorf("%w json.Unmarshal %v", erm.ErrInvalidCredentials, err)
	}
	if key.ClientEmail == "" {
		return nil, fmt.Errorf("%w missing client_email", erm.ErrInvalidCredentials)
	}
	if key.PrivateKey == "" {
		return nil, fmt.Errorf("%w missing private_key", erm.ErrInvalidCredentials)
	}
	keyJSONdata := []byte(credentialsJSON)
	if key.Type == "" {
		// the type is required by google.CredentialsFromJSON only
		key.Type = "service_account"
		keyJSONdata, err = json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("%w json.Marshal %v", erm.ErrInvalidCredentials, err)
		}
	}
	credentials, err = google.CredentialsFromJSON(ctx, keyJSONdata, CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("%w google.CredentialsFromJSON %v", erm.ErrInvalidCredentials, err)
	}
	return credentials, nil
}
