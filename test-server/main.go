package main

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strings"
)

var port = os.Getenv("PORT")

func main() {
	if port == "" {
		port = "3333"
	}

	addr := ":" + port

	listener, err := net.Listen("tcp", addr)

	if err != nil {
		fmt.Printf("failed to listen on %s: %s\n", addr, err)
		os.Exit(1)
	}

	fmt.Printf("starting fake stratum server: listening on %s\n", addr)

	for {
		conn, err := listener.Accept()

		if err != nil {
			continue
		}

		go handle(conn)
	}
}

func handle(conn net.Conn) {
	defer conn.Close()

	line, err := bufio.NewReader(conn).ReadString('\n')

	if err != nil {
		return
	}

	fmt.Printf("received request: %s", line)

	if strings.Contains(line, "mining.subscribe") {
		fmt.Fprint(
			conn,
			`{"id":1,"result":[[["mining.set_difficulty","1"],["mining.notify","1"]],"08000002",4],"error":null}`+"\n",
		)
	}
}
