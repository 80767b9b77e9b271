// Copyright 2025 SuperNetworkAI Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"fmt"
	"time"

	"github.com/SriramKintada/SuperNetworkAI/core"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Records are serialized with mus-go primitives. Field order is fixed and
// append-only: new fields go at the end so existing data stays readable.

// MarshalProfile serializes a Profile to bytes.
func MarshalProfile(p *core.Profile) []byte {
	size := ord.String.Size(string(p.Id)) +
		ord.String.Size(string(p.UserId)) +
		ord.String.Size(p.Name) +
		ord.String.Size(p.Headline) +
		ord.String.Size(p.Bio) +
		ord.String.Size(p.ExperienceSummary) +
		ord.String.Size(p.IntentText) +
		sizeStringSlice(p.Skills) +
		sizeStringSlice(p.Industries) +
		sizeStringSlice(p.ExpertiseAreas) +
		ord.String.Size(p.Location) +
		sizeStringSlice(p.AllRoles) +
		sizeStringSlice(p.AllCompanies) +
		ord.String.Size(p.EducationSummary) +
		sizeStringSlice(p.KeyAchievements) +
		ord.String.Size(p.VectorizationText) +
		varint.Int.Size(int(p.Visibility)) +
		ord.Bool.Size(p.ShowInSearch) +
		sizeTime(p.InsertedAt) +
		sizeTime(p.UpdatedAt)

	bs := make([]byte, size)
	n := ord.String.Marshal(string(p.Id), bs)
	n += ord.String.Marshal(string(p.UserId), bs[n:])
	n += ord.String.Marshal(p.Name, bs[n:])
	n += ord.String.Marshal(p.Headline, bs[n:])
	n += ord.String.Marshal(p.Bio, bs[n:])
	n += ord.String.Marshal(p.ExperienceSummary, bs[n:])
	n += ord.String.Marshal(p.IntentText, bs[n:])
	n += marshalStringSlice(p.Skills, bs[n:])
	n += marshalStringSlice(p.Industries, bs[n:])
	n += marshalStringSlice(p.ExpertiseAreas, bs[n:])
	n += ord.String.Marshal(p.Location, bs[n:])
	n += marshalStringSlice(p.AllRoles, bs[n:])
	n += marshalStringSlice(p.AllCompanies, bs[n:])
	n += ord.String.Marshal(p.EducationSummary, bs[n:])
	n += marshalStringSlice(p.KeyAchievements, bs[n:])
	n += ord.String.Marshal(p.VectorizationText, bs[n:])
	n += varint.Int.Marshal(int(p.Visibility), bs[n:])
	n += ord.Bool.Marshal(p.ShowInSearch, bs[n:])
	n += marshalTime(p.InsertedAt, bs[n:])
	marshalTime(p.UpdatedAt, bs[n:])
	return bs
}

// UnmarshalProfile deserializes a Profile from bytes.
func UnmarshalProfile(data []byte) (*core.Profile, error) {
	p := &core.Profile{}
	n := 0

	fields := []func([]byte) (int, error){
		unmarshalID(&p.Id),
		unmarshalID(&p.UserId),
		unmarshalString(&p.Name),
		unmarshalString(&p.Headline),
		unmarshalString(&p.Bio),
		unmarshalString(&p.ExperienceSummary),
		unmarshalString(&p.IntentText),
		unmarshalStringSlice(&p.Skills),
		unmarshalStringSlice(&p.Industries),
		unmarshalStringSlice(&p.ExpertiseAreas),
		unmarshalString(&p.Location),
		unmarshalStringSlice(&p.AllRoles),
		unmarshalStringSlice(&p.AllCompanies),
		unmarshalString(&p.EducationSummary),
		unmarshalStringSlice(&p.KeyAchievements),
		unmarshalString(&p.VectorizationText),
		unmarshalVisibility(&p.Visibility),
		unmarshalBool(&p.ShowInSearch),
		unmarshalTime(&p.InsertedAt),
		unmarshalTime(&p.UpdatedAt),
	}
	for _, field := range fields {
		m, err := field(data[n:])
		if err != nil {
			return nil, fmt.Errorf("%w: profile: %w", ErrSerializationFailed, err)
		}
		n += m
	}
	return p, nil
}

// MarshalProfileEmbedding serializes a ProfileEmbedding to bytes.
func MarshalProfileEmbedding(e *core.ProfileEmbedding) []byte {
	size := ord.String.Size(string(e.ProfileId)) +
		sizeVector(e.Vector) +
		ord.String.Size(e.SourceText) +
		ord.String.Size(e.TextHash) +
		sizeTime(e.UpdatedAt)

	bs := make([]byte, size)
	n := ord.String.Marshal(string(e.ProfileId), bs)
	n += marshalVector(e.Vector, bs[n:])
	n += ord.String.Marshal(e.SourceText, bs[n:])
	n += ord.String.Marshal(e.TextHash, bs[n:])
	marshalTime(e.UpdatedAt, bs[n:])
	return bs
}

// UnmarshalProfileEmbedding deserializes a ProfileEmbedding from bytes.
func UnmarshalProfileEmbedding(data []byte) (*core.ProfileEmbedding, error) {
	e := &core.ProfileEmbedding{}
	n := 0

	fields := []func([]byte) (int, error){
		unmarshalID(&e.ProfileId),
		unmarshalVector(&e.Vector),
		unmarshalString(&e.SourceText),
		unmarshalString(&e.TextHash),
		unmarshalTime(&e.UpdatedAt),
	}
	for _, field := range fields {
		m, err := field(data[n:])
		if err != nil {
			return nil, fmt.Errorf("%w: embedding: %w", ErrSerializationFailed, err)
		}
		n += m
	}
	return e, nil
}

// MarshalMembership serializes a CommunityMembership to bytes.
func MarshalMembership(m *core.CommunityMembership) []byte {
	size := ord.String.Size(string(m.CommunityId)) +
		ord.String.Size(string(m.UserId)) +
		varint.Int.Size(int(m.Status)) +
		ord.Bool.Size(m.VisibleInCommunity) +
		sizeTime(m.InsertedAt) +
		sizeTime(m.UpdatedAt)

	bs := make([]byte, size)
	n := ord.String.Marshal(string(m.CommunityId), bs)
	n += ord.String.Marshal(string(m.UserId), bs[n:])
	n += varint.Int.Marshal(int(m.Status), bs[n:])
	n += ord.Bool.Marshal(m.VisibleInCommunity, bs[n:])
	n += marshalTime(m.InsertedAt, bs[n:])
	marshalTime(m.UpdatedAt, bs[n:])
	return bs
}

// UnmarshalMembership deserializes a CommunityMembership from bytes.
func UnmarshalMembership(data []byte) (*core.CommunityMembership, error) {
	m := &core.CommunityMembership{}
	n := 0

	var status int
	fields := []func([]byte) (int, error){
		unmarshalID(&m.CommunityId),
		unmarshalID(&m.UserId),
		unmarshalInt(&status),
		unmarshalBool(&m.VisibleInCommunity),
		unmarshalTime(&m.InsertedAt),
		unmarshalTime(&m.UpdatedAt),
	}
	for _, field := range fields {
		k, err := field(data[n:])
		if err != nil {
			return nil, fmt.Errorf("%w: membership: %w", ErrSerializationFailed, err)
		}
		n += k
	}
	m.Status = core.MembershipStatus(status)
	return m, nil
}

// field-level helpers

func sizeStringSlice(ss []string) int {
	size := varint.Int.Size(len(ss))
	for _, s := range ss {
		size += ord.String.Size(s)
	}
	return size
}

func marshalStringSlice(ss []string, bs []byte) int {
	n := varint.Int.Marshal(len(ss), bs)
	for _, s := range ss {
		n += ord.String.Marshal(s, bs[n:])
	}
	return n
}

func sizeVector(v []float32) int {
	size := varint.Int.Size(len(v))
	for _, f := range v {
		size += varint.Float32.Size(f)
	}
	return size
}

func marshalVector(v []float32, bs []byte) int {
	n := varint.Int.Marshal(len(v), bs)
	for _, f := range v {
		n += varint.Float32.Marshal(f, bs[n:])
	}
	return n
}

// Timestamps travel as microseconds since the Unix epoch. The zero time
// maps to 0 so unset timestamps survive a round trip as IsZero.
func timeMicros(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMicro()
}

func sizeTime(t time.Time) int {
	return varint.Int64.Size(timeMicros(t))
}

func marshalTime(t time.Time, bs []byte) int {
	return varint.Int64.Marshal(timeMicros(t), bs)
}

func unmarshalString(dst *string) func([]byte) (int, error) {
	return func(bs []byte) (int, error) {
		s, n, err := ord.String.Unmarshal(bs)
		if err != nil {
			return n, err
		}
		*dst = s
		return n, nil
	}
}

func unmarshalID(dst *core.ID) func([]byte) (int, error) {
	return func(bs []byte) (int, error) {
		s, n, err := ord.String.Unmarshal(bs)
		if err != nil {
			return n, err
		}
		*dst = core.ID(s)
		return n, nil
	}
}

func unmarshalBool(dst *bool) func([]byte) (int, error) {
	return func(bs []byte) (int, error) {
		b, n, err := ord.Bool.Unmarshal(bs)
		if err != nil {
			return n, err
		}
		*dst = b
		return n, nil
	}
}

func unmarshalInt(dst *int) func([]byte) (int, error) {
	return func(bs []byte) (int, error) {
		v, n, err := varint.Int.Unmarshal(bs)
		if err != nil {
			return n, err
		}
		*dst = v
		return n, nil
	}
}

func unmarshalVisibility(dst *core.Visibility) func([]byte) (int, error) {
	return func(bs []byte) (int, error) {
		v, n, err := varint.Int.Unmarshal(bs)
		if err != nil {
			return n, err
		}
		*dst = core.Visibility(v)
		return n, nil
	}
}

func unmarshalTime(dst *time.Time) func([]byte) (int, error) {
	return func(bs []byte) (int, error) {
		micros, n, err := varint.Int64.Unmarshal(bs)
		if err != nil {
			return n, err
		}
		if micros == 0 {
			*dst = time.Time{}
		} else {
			*dst = time.UnixMicro(micros).UTC()
		}
		return n, nil
	}
}

func unmarshalStringSlice(dst *[]string) func([]byte) (int, error) {
	return func(bs []byte) (int, error) {
		count, n, err := varint.Int.Unmarshal(bs)
		if err != nil {
			return n, err
		}
		if count < 0 || count > len(bs) {
			return n, fmt.Errorf("invalid slice length %d", count)
		}
		if count == 0 {
			return n, nil
		}
		ss := make([]string, count)
		for i := 0; i < count; i++ {
			s, m, err := ord.String.Unmarshal(bs[n:])
			if err != nil {
				return n, err
			}
			ss[i] = s
			n += m
		}
		*dst = ss
		return n, nil
	}
}

func unmarshalVector(dst *[]float32) func([]byte) (int, error) {
	return func(bs []byte) (int, error) {
		count, n, err := varint.Int.Unmarshal(bs)
		if err != nil {
			return n, err
		}
		if count < 0 || count > len(bs) {
			return n, fmt.Errorf("invalid vector length %d", count)
		}
		if count == 0 {
			return n, nil
		}
		v := make([]float32, count)
		for i := 0; i < count; i++ {
			f, m, err := varint.Float32.Unmarshal(bs[n:])
			if err != nil {
				return n, err
			}
			v[i] = f
			n += m
		}
		*dst = v
		return n, nil
	}
}
