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

package validater

import (
	"errors"
	"testing"

	"github.com/BrunoReboul/gcfdeploy/utilities/erm"
)

func TestUnitFirstInvalidField(t *testing.T) {
	type twoStrings struct {
		A string `env:"first_one" valid:"isNotZeroValue"`
		B string `env:"second_one" valid:"isNotZeroValue"`
		C string
	}
	type withInt64 struct {
		I int64 `valid:"isNotZeroValue"`
	}
	type withSlice struct {
		Sl []string `env:"slice" valid:"isNotZeroValue"`
	}
	type nested struct {
		Inner twoStrings
		Last  string `env:"last_one" valid:"isNotZeroValue"`
	}
	var testCases = []struct {
		name      string
		structure interface{}
		wantField string
	}{
		{
			name:      "allProvided",
			structure: twoStrings{A: "a", B: "b"},
		},
		{
			name:      "optionalNotChecked",
			structure: twoStrings{A: "a", B: "b", C: ""},
		},
		{
			name:      "firstMissing",
			structure: twoStrings{B: "b"},
			wantField: "first_one",
		},
		{
			name:      "bothMissingReportsFirst",
			structure: twoStrings{},
			wantField: "first_one",
		},
		{
			name:      "secondMissing",
			structure: &twoStrings{A: "a"},
			wantField: "second_one",
		},
		{
			name:      "int64ZeroNamedByGoField",
			structure: withInt64{},
			wantField: "I",
		},
		{
			name:      "sliceEmpty",
			structure: withSlice{Sl: []string{}},
			wantField: "slice",
		},
		{
			name:      "nestedFirst",
			structure: nested{Inner: twoStrings{A: "a"}},
			wantField: "second_one",
		},
		{
			name:      "nestedLast",
			structure: nested{Inner: twoStrings{A: "a", B: "b"}},
			wantField: "last_one",
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := FirstInvalidField(tc.structure)
			if tc.wantField == "" {
				if err != nil {
					t.Errorf("Want NO error, got %v", err)
				}
				return
			}
			var configurationError *erm.ConfigurationError
			if !errors.As(err, &configurationError) {
				t.Fatalf("Want a ConfigurationError, got %v", err)
			}
			if configurationError.Field != tc.wantField {
				t.Errorf("Want field %s, got %s", tc.wantField, configurationError.Field)
			}
		})
	}
}

func TestUnitFirstInvalidFieldNotAStruct(t *testing.T) {
	if err := FirstInvalidField("not a struct"); err == nil {
		t.Errorf("Should send back an error and is NOT")
	}
}
