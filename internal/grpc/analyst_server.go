package grpcserver

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	analystv1 "analystDashboard/api/analyst/v1"
	"analystDashboard/internal/accounts"
	"analystDashboard/internal/auth"
	"analystDashboard/internal/history"
	"analystDashboard/models"
	"analystDashboard/repository"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// genericLoginFailure is the only message a failed login ever returns.
const genericLoginFailure = "invalid username or password"

// Server bundles dependencies and implements analyst.v1.AnalystService.
type Server struct {
	analystv1.UnimplementedAnalystServiceServer
	Accounts  *accounts.Store
	History   *history.Store
	Users     *repository.UserRepository
	JWTSecret string
	TokenTTL  time.Duration
	Logger    *slog.Logger
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// Register creates a "user" account.
func (s *Server) Register(ctx context.Context, req *analystv1.RegisterRequest) (*analystv1.RegisterResponse, error) {
	if req == nil || strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "username and password are required")
	}
	if err := s.Accounts.CreateUser(ctx, req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, accounts.ErrUsernameTaken):
			return nil, status.Error(codes.AlreadyExists, "user exists")
		case errors.Is(err, accounts.ErrInvalidInput):
			return nil, status.Error(codes.InvalidArgument, "password is not acceptable")
		default:
			return nil, status.Error(codes.Internal, "registration failed")
		}
	}
	return &analystv1.RegisterResponse{Username: req.Username}, nil
}

// Login verifies credentials and issues a session token carrying the stored role.
func (s *Server) Login(ctx context.Context, req *analystv1.LoginRequest) (*analystv1.LoginResponse, error) {
	if req == nil {
		return nil, status.Error(codes.Unauthenticated, genericLoginFailure)
	}
	role, ok := s.Accounts.Login(ctx, req.Username, req.Password)
	if !ok {
		s.logger().InfoContext(ctx, "login rejected")
		return nil, status.Error(codes.Unauthenticated, genericLoginFailure)
	}
	tok, exp, err := auth.IssueToken(s.JWTSecret, req.Username, role, s.TokenTTL)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "issue token: %v", err)
	}
	s.logger().InfoContext(ctx, "login accepted", "username", req.Username, "role", role)
	return &analystv1.LoginResponse{Role: string(role), Token: tok, ExpiresAt: exp.Unix()}, nil
}

// SaveHistory records a question/answer pair for the authenticated caller.
func (s *Server) SaveHistory(ctx context.Context, req *analystv1.SaveHistoryRequest) (*analystv1.SaveHistoryResponse, error) {
	p, err := auth.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if req == nil || strings.TrimSpace(req.Question) == "" {
		return nil, status.Error(codes.InvalidArgument, "question is required")
	}
	e, err := s.History.SaveHistory(ctx, p.Name, req.Question, req.Answer)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "save history: %v", err)
	}
	return &analystv1.SaveHistoryResponse{Entry: &analystv1.HistoryEntry{
		Id: e.ID, Username: e.Username, Question: e.Question, Answer: e.Answer, Time: e.Time,
	}}, nil
}

// ListMyHistory returns the caller's own entries.
func (s *Server) ListMyHistory(ctx context.Context, _ *emptypb.Empty) (*analystv1.ListMyHistoryResponse, error) {
	p, err := auth.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.History.GetUserHistory(ctx, p.Name)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list history: %v", err)
	}
	out := make([]*analystv1.HistoryEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, &analystv1.HistoryEntry{Id: r.ID, Question: r.Question, Answer: r.Answer, Time: r.Time})
	}
	return &analystv1.ListMyHistoryResponse{Entries: out}, nil
}

// ListAllHistory returns every entry without answers. Admin only.
func (s *Server) ListAllHistory(ctx context.Context, _ *emptypb.Empty) (*analystv1.ListAllHistoryResponse, error) {
	if _, err := auth.RequireAdmin(ctx, s.Users); err != nil {
		return nil, err
	}
	rows, err := s.History.GetAllHistory(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list history: %v", err)
	}
	out := make([]*analystv1.HistoryEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, &analystv1.HistoryEntry{Id: r.ID, Username: r.Username, Question: r.Question, Time: r.Time})
	}
	return &analystv1.ListAllHistoryResponse{Entries: out}, nil
}

// DeleteHistory removes one entry. Admins may delete any entry, users only their own.
// An unknown id and another user's id both succeed with Deleted=false.
func (s *Server) DeleteHistory(ctx context.Context, req *analystv1.DeleteHistoryRequest) (*analystv1.DeleteHistoryResponse, error) {
	p, err := auth.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if req == nil || req.Id <= 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	var deleted bool
	if p.Role == models.RoleAdmin {
		if _, err := auth.RequireAdmin(ctx, s.Users); err != nil {
			return nil, err
		}
		deleted, err = s.History.DeleteEntry(ctx, req.Id)
	} else {
		deleted, err = s.History.DeleteOwnEntry(ctx, p.Name, req.Id)
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "delete history: %v", err)
	}
	return &analystv1.DeleteHistoryResponse{Deleted: deleted}, nil
}
