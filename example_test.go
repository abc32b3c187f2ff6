package trellis_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	trellis "github.com/trellis-ml/trellis-go"
	"github.com/trellis-ml/trellis-go/client"
)

func ExampleNew() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":"ws-1","name":"demo"}`)
	}))
	defer ts.Close()

	sdk, err := trellis.New(
		client.WithBaseURL(ts.URL),
		client.WithToken("tr_live_example"),
		client.WithTimeout(5*time.Second),
	)
	if err != nil {
		fmt.Println("build error:", err)
		return
	}

	ws, err := sdk.Workspaces.Create(context.Background(), trellis.CreateWorkspaceParams{Name: "demo"})
	if err != nil {
		fmt.Println("create error:", err)
		return
	}

	fmt.Println(ws.ID, ws.Name)
	// Output: ws-1 demo
}
