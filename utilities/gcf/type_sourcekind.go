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

import "google.golang.org/api/cloudfunctions/v1"

// sourceKind where the function source archive goes
type sourceKind int

const (
	// sourceUploadURL no archive url yet, use a signed upload url
	sourceUploadURL sourceKind = iota
	// sourceArchiveURL overwrite the existing cloud storage object
	sourceArchiveURL
)

func (kind sourceKind) String() string {
	switch kind {
	case sourceArchiveURL:
		return "sourceArchiveUrl"
	default:
		return "sourceUploadUrl"
	}
}

func sourceOf(cloudFunction *cloudfunctions.CloudFunction) sourceKind {
	switch {
	case cloudFunction.SourceArchiveUrl != "":
		return sourceArchiveURL
	default:
		return sourceUploadURL
	}
}
