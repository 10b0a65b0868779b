package main

import (
	"fmt"
	"log"

	"github.com/gatekit/gate-go/pkg/gate"
)

func main() {
	log.Printf("gate-go version: %s", gate.LibraryVersion())

	positive, err := gate.NewBuilder[string, int]().
		WithClassifier(func(n int) bool { return n > 0 }).
		WhenTrue(gate.NewLeaf[string, int]("positive")).
		WhenFalse(gate.NewLeaf[string, int]("non-positive")).
		Build()
	if err != nil {
		log.Fatalf("unexpected failure building smoke gate: %v", err)
	}

	fmt.Println(gate.Summary(positive))
	fmt.Printf("Evaluate(1) = %s\n", gate.Evaluate(positive, 1))
	fmt.Printf("Evaluate(-1) = %s\n", gate.Evaluate(positive, -1))
}
