package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/k98kurz/hrw/pkg/random"
	"github.com/k98kurz/hrw/pkg/rendezvous"
	"github.com/k98kurz/hrw/pkg/util"
)

// decodeID parses a content or replica ID from the command line. IDs
// prefixed with "0x" are decoded as hexadecimal; anything else is taken
// as a raw byte string.
func decodeID(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") {
		return hex.DecodeString(strings.TrimPrefix(s, "0x"))
	}
	return []byte(s), nil
}

func main() {
	var (
		k         = flag.Int("k", 0, "Number of replicas to choose; zero derives a default from the replica count")
		hashName  = flag.String("hash", "sha256", "Hash function to weigh replicas with: sha256, shake256 or blake3")
		doShuffle = flag.Bool("shuffle", false, "Shuffle the chosen replicas before printing, as a load-balancing caller would")
	)
	flag.Parse()
	args := flag.Args()
	if len(args) < 2 {
		log.Fatal("Usage: hrw_select [-k N] [-hash sha256|shake256|blake3] [-shuffle] content_id replica_id...")
	}

	var hashFunction rendezvous.HashFunction
	switch *hashName {
	case "sha256":
		hashFunction = rendezvous.SHA256HashFunction
	case "shake256":
		hashFunction = rendezvous.NewSHAKE256HashFunction(20)
	case "blake3":
		hashFunction = rendezvous.NewBLAKE3HashFunction(32)
	default:
		log.Fatalf("Unknown hash function %#v", *hashName)
	}

	contentID, err := decodeID(args[0])
	if err != nil {
		log.Fatal(util.StatusWrapf(err, "Invalid content ID %#v", args[0]))
	}
	replicaIDs := make([][]byte, 0, len(args)-1)
	for _, arg := range args[1:] {
		replicaID, err := decodeID(arg)
		if err != nil {
			log.Fatal(util.StatusWrapf(err, "Invalid replica ID %#v", arg))
		}
		replicaIDs = append(replicaIDs, replicaID)
	}

	chosen, remaining, err := rendezvous.Choose(contentID, replicaIDs, *k, hashFunction)
	if err != nil {
		log.Fatal("Failed to choose replicas: ", err)
	}
	if *doShuffle {
		rendezvous.ShuffleChosen(random.NewFastSingleThreadedGenerator(), chosen)
	}

	fmt.Println("Chosen:")
	for _, replicaID := range chosen {
		fmt.Printf("  %x\n", replicaID)
	}
	fmt.Println("Remaining:")
	for _, replicaID := range remaining {
		fmt.Printf("  %x\n", replicaID)
	}
}
