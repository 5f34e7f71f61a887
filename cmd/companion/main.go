package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"companion/internal/adapters/api"
	"companion/internal/adapters/push"
	"companion/internal/adapters/storage"
	pushtokenStore "companion/internal/adapters/storage/pushtoken"
	sessionStore "companion/internal/adapters/storage/session"
	"companion/internal/application/orchestrators"
	"companion/internal/application/projections"
	"companion/internal/application/scanner"
	"companion/internal/application/sessionstore"
	"companion/internal/config"
	"companion/internal/domain/enrollment"
	"companion/internal/domain/notification"
	"companion/internal/domain/scan"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	// Initialize local database with WAL mode and busy timeout
	dsn := cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	sessions := sessionstore.New(sessionStore.NewSQLiteStore(db))
	tokens := pushtokenStore.NewSQLiteStore(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A 401 from any endpoint forces a local sign-out.
	client := api.NewClient(api.Config{
		BaseURL:           cfg.APIBaseURL,
		Timeout:           cfg.RequestTimeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
	}, sessions.Token, func() {
		_ = sessions.SignOut(context.Background())
	})

	sessions.Rehydrate(ctx)

	if cfg.PushSocketURL != "" {
		listener := push.NewListener(cfg.PushSocketURL, sessions.Token, func(msg notification.Message) {
			fmt.Printf("\n[notification] %s: %s\n> ", msg.Title, msg.Body)
		})
		go listener.Run(ctx)
	}

	log.Printf("Companion %s connected to %s", version, cfg.APIBaseURL)
	runLoop(ctx, client, sessions, tokens)
}

// runLoop reads commands from stdin until EOF or quit.
func runLoop(ctx context.Context, client *api.Client, sessions *sessionstore.Store, tokens *pushtokenStore.SQLiteStore) {
	scanners := map[string]*scanner.Scanner{}
	submit := func(ctx context.Context, credential, activityID string) scan.Result {
		return orchestrators.ExecuteCheckIn(ctx,
			orchestrators.CheckInInput{Credential: credential, ActivityID: activityID},
			orchestrators.CheckInDeps{Activities: client, CheckIns: client})
	}

	in := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for in.Scan() {
		if ctx.Err() != nil {
			return
		}
		args := strings.Fields(in.Text())
		if len(args) == 0 {
			fmt.Print("> ")
			continue
		}

		switch args[0] {
		case "quit", "exit":
			return

		case "login":
			if len(args) != 3 {
				fmt.Println("usage: login <email> <password>")
				break
			}
			u, err := orchestrators.ExecuteSignIn(ctx,
				orchestrators.SignInInput{Email: args[1], Password: args[2]},
				orchestrators.SignInDeps{Auth: client, Sessions: sessions})
			if err != nil {
				fmt.Println("sign-in failed:", err)
				break
			}
			fmt.Printf("signed in as %s (%s)\n", u.Name, u.Role)

		case "logout":
			if err := sessions.SignOut(ctx); err != nil {
				fmt.Println("sign-out:", err)
			}

		case "whoami":
			if sessions.Loading() {
				fmt.Println("session still loading")
				break
			}
			sess, ok := sessions.Current()
			if !ok {
				fmt.Println("signed out")
				break
			}
			fmt.Printf("%s <%s> role=%s points=%d\n", sess.User.Name, sess.User.Email, sess.User.Role, sess.User.Points)

		case "activities":
			category := ""
			if len(args) > 1 {
				category = args[1]
			}
			res, err := projections.QueryGetActivities(ctx,
				projections.GetActivitiesQuery{Category: category},
				projections.GetActivitiesDeps{API: client})
			if err != nil {
				fmt.Println("fetch failed:", err)
				break
			}
			for _, a := range res.Activities {
				slots := "unlimited"
				if !a.Unlimited() {
					slots = fmt.Sprintf("%d slots", a.Vagas)
				}
				fmt.Printf("%s  %s  %s  [%s, %s]\n", a.ID, a.Date.Format(time.RFC822), a.Title, a.Category, slots)
			}

		case "agenda":
			sess, ok := sessions.Current()
			if !ok {
				fmt.Println("sign in first")
				break
			}
			res, err := projections.QueryGetMyEnrollments(ctx,
				projections.GetMyEnrollmentsQuery{UserID: sess.User.ID},
				projections.GetMyEnrollmentsDeps{Enrollments: client, Activities: client})
			if err != nil {
				fmt.Println("fetch failed:", err)
				break
			}
			for _, item := range res.Items {
				fmt.Printf("%s  %s  %s\n", item.Activity.ID, item.Activity.Date.Format(time.RFC822), item.Activity.Title)
			}

		case "status":
			sess, ok := sessions.Current()
			if !ok || len(args) != 2 {
				fmt.Println("usage (signed in): status <activity-id>")
				break
			}
			status, err := orchestrators.ExecuteCheckEnrollment(ctx,
				orchestrators.CheckEnrollmentInput{UserID: sess.User.ID, ActivityID: args[1]},
				orchestrators.CheckEnrollmentDeps{Enrollments: client})
			if err != nil {
				fmt.Println("status unavailable:", err)
				break
			}
			fmt.Println(status)

		case "enroll", "unenroll":
			sess, ok := sessions.Current()
			if !ok || len(args) != 2 {
				fmt.Printf("usage (signed in): %s <activity-id>\n", args[0])
				break
			}
			var status enrollment.Status
			var err error
			if args[0] == "enroll" {
				status, err = orchestrators.ExecuteEnroll(ctx,
					orchestrators.EnrollInput{UserID: sess.User.ID, ActivityID: args[1]},
					orchestrators.EnrollDeps{Enrollments: client})
			} else {
				status, err = orchestrators.ExecuteUnenroll(ctx,
					orchestrators.UnenrollInput{UserID: sess.User.ID, ActivityID: args[1]},
					orchestrators.UnenrollDeps{Enrollments: client})
			}
			if err != nil {
				fmt.Println(err)
				break
			}
			fmt.Println(status)

		case "attendees":
			if len(args) != 2 && len(args) != 3 {
				fmt.Println("usage: attendees <activity-id> [page]")
				break
			}
			page := 1
			if len(args) == 3 {
				page, _ = strconv.Atoi(args[2])
			}
			res, err := projections.QueryGetAttendees(ctx,
				projections.GetAttendeesQuery{ActivityID: args[1], Page: page},
				projections.GetAttendeesDeps{API: client})
			if err != nil {
				fmt.Println("fetch failed:", err)
				break
			}
			fmt.Printf("%d checked in (page %d/%d)\n", res.Total, res.Page.Page, res.Page.TotalPages)
			for _, u := range res.Attendees {
				fmt.Printf("  %s <%s>\n", u.Name, u.Email)
			}

		case "scan":
			if len(args) != 3 {
				fmt.Println("usage: scan <activity-id> <credential>")
				break
			}
			sc, ok := scanners[args[1]]
			if !ok {
				sc = scanner.New(args[1], submit)
				scanners[args[1]] = sc
			}
			res, ran := sc.OnDecode(ctx, args[2])
			if !ran {
				fmt.Println("scan ignored: dismiss the previous result first")
				break
			}
			if res.Message != "" {
				fmt.Printf("%s: %s\n", res.Code, res.Message)
			} else {
				fmt.Println(res.Code)
			}

		case "dismiss":
			for _, sc := range scanners {
				sc.DismissOverlay()
			}

		case "background", "foreground":
			phase := scan.PhaseActive
			if args[0] == "background" {
				phase = scan.PhaseBackground
			}
			for _, sc := range scanners {
				sc.OnAppStateChange(phase)
			}

		case "register-token":
			if len(args) != 2 {
				fmt.Println("usage: register-token <token>")
				break
			}
			err := orchestrators.ExecuteRegisterPushToken(ctx,
				orchestrators.RegisterPushTokenInput{Token: args[1]},
				orchestrators.RegisterPushTokenDeps{
					Sessions:   sessions,
					Store:      tokens,
					API:        client,
					GenerateID: func() string { return uuid.New().String() },
					Now:        time.Now,
				})
			if err != nil {
				fmt.Println("registration failed:", err)
			}

		case "notify":
			if len(args) < 4 {
				fmt.Println("usage: notify <user-id|-> <activity-id|-> <title words...>")
				break
			}
			userID, activityID := args[1], args[2]
			if userID == "-" {
				userID = ""
			}
			if activityID == "-" {
				activityID = ""
			}
			err := orchestrators.ExecuteSendNotification(ctx,
				orchestrators.SendNotificationInput{
					UserID:     userID,
					ActivityID: activityID,
					Title:      strings.Join(args[3:], " "),
				},
				orchestrators.SendNotificationDeps{Sessions: sessions, API: client})
			if err != nil {
				fmt.Println("send failed:", err)
			}

		case "events":
			list, err := client.ListEvents(ctx)
			if err != nil {
				fmt.Println("fetch failed:", err)
				break
			}
			for _, e := range list {
				fmt.Printf("%s  %s\n", e.ID, e.Name)
			}

		case "sponsors":
			list, err := client.ListSponsors(ctx)
			if err != nil {
				fmt.Println("fetch failed:", err)
				break
			}
			for _, s := range list {
				fmt.Printf("%s  %s\n", s.ID, s.Name)
			}

		case "tags":
			list, err := client.ListTags(ctx)
			if err != nil {
				fmt.Println("fetch failed:", err)
				break
			}
			for _, t := range list {
				fmt.Printf("%s  %s\n", t.ID, t.Name)
			}

		default:
			fmt.Println("commands: login logout whoami activities agenda status enroll unenroll attendees scan dismiss background foreground register-token notify events sponsors tags quit")
		}
		fmt.Print("> ")
	}
}
