package echoapi

import "net"

func (s *Server) ListenerAddr() net.Addr {
	return s.app.ListenerAddr()
}
