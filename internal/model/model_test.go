package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestCommentSerialize(t *testing.T) {
	c := Comment{ID: 5, CommentText: "hi", AuthorID: 1, PostID: 3}
	got, err := json.Marshal(c.Serialize())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded, want map[string]any
	_ = json.Unmarshal(got, &decoded)
	_ = json.Unmarshal([]byte(`{"id":5,"comment_text":"hi","author_id":1,"post_id":3}`), &want)
	if !reflect.DeepEqual(decoded, want) {
		t.Fatalf("unexpected projection: %s", got)
	}
}

func TestUserSerialize(t *testing.T) {
	u := User{ID: 1, Username: "ana", Firstname: "Ana", Lastname: "Diaz", Email: "ana@example.com"}
	want := map[string]any{
		"id":        int64(1),
		"username":  "ana",
		"firstname": "Ana",
		"lastname":  "Diaz",
		"email":     "ana@example.com",
	}
	if got := u.Serialize(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected projection: %v", got)
	}
}

func TestMediaSerializeType(t *testing.T) {
	unset := Media{ID: 1, URL: "https://cdn/x.png", PostID: 2, UserID: 9}.Serialize()
	if v, ok := unset["type"]; !ok || v != nil {
		t.Fatalf("expected nil type, got %v", v)
	}
	if _, ok := unset["user_id"]; ok {
		t.Fatalf("user_id must not be projected")
	}

	video := Media{ID: 1, Type: MediaVideo, URL: "https://cdn/x.mp4", PostID: 2}.Serialize()
	if video["type"] != "video" {
		t.Fatalf("expected literal enum value, got %v", video["type"])
	}

	raw, _ := json.Marshal(unset)
	var decoded map[string]any
	_ = json.Unmarshal(raw, &decoded)
	if v, ok := decoded["type"]; !ok || v != nil {
		t.Fatalf("expected json null type, got %s", raw)
	}
}

func TestPostAndFollowerSerialize(t *testing.T) {
	if got := (Post{ID: 4, UserID: 2}).Serialize(); !reflect.DeepEqual(got, map[string]any{"id": int64(4), "user_id": int64(2)}) {
		t.Fatalf("unexpected post projection: %v", got)
	}
	f := Follower{ID: 7, UserFromID: 1, UserToID: 2}
	want := map[string]any{"id": int64(7), "user_from_id": int64(1), "user_to_id": int64(2)}
	if got := f.Serialize(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected follower projection: %v", got)
	}
}

func TestProjectionsHoldOnlyScalars(t *testing.T) {
	rows := []Serializer{
		User{ID: 1}, Media{ID: 1, Type: MediaImage}, Post{ID: 1}, Comment{ID: 1}, Follower{ID: 1},
	}
	for _, r := range rows {
		for k, v := range r.Serialize() {
			switch v.(type) {
			case nil, int64, string:
			default:
				t.Fatalf("%T.%s holds %T", r, k, v)
			}
		}
	}
}

func TestParseMediaType(t *testing.T) {
	if typ, err := ParseMediaType(""); err != nil || typ != "" {
		t.Fatalf("expected unset type")
	}
	if typ, err := ParseMediaType("image"); err != nil || typ != MediaImage {
		t.Fatalf("expected image")
	}
	if _, err := ParseMediaType("gif"); err == nil {
		t.Fatalf("expected error for unknown type")
	}
}

func TestSerializeAllEmpty(t *testing.T) {
	out := SerializeAll([]Post(nil))
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty slice")
	}
	raw, _ := json.Marshal(out)
	if string(raw) != "[]" {
		t.Fatalf("expected [], got %s", raw)
	}
}
