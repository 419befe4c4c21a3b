/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	authService "github.com/wso2/identity-registration-client/internal/auth/service"
	badgeService "github.com/wso2/identity-registration-client/internal/badge/service"
	catalogService "github.com/wso2/identity-registration-client/internal/catalog/service"
	newsService "github.com/wso2/identity-registration-client/internal/news/service"
	profileModel "github.com/wso2/identity-registration-client/internal/profile/model"
	"github.com/wso2/identity-registration-client/internal/profile/provider"
	profileService "github.com/wso2/identity-registration-client/internal/profile/service"
	"github.com/wso2/identity-registration-client/internal/profile/store"
	registrationService "github.com/wso2/identity-registration-client/internal/registration/service"
	"github.com/wso2/identity-registration-client/internal/system/config"
	"github.com/wso2/identity-registration-client/internal/system/httpclient"
	"github.com/wso2/identity-registration-client/internal/system/log"
)

const configFile = "config/deployment.yaml"

func main() {

	clientHome := getClientHome()

	if envFiles, err := filepath.Glob(filepath.Join(clientHome, "config", "*.env")); err == nil && len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}

	clientConfig, err := config.LoadConfig(filepath.Join(clientHome, configFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitializeClientRuntime(clientHome, clientConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize client runtime: %v\n", err)
		os.Exit(1)
	}

	if err := log.Init(clientConfig.Log.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := log.GetLogger()

	localStore, err := store.Open(filepath.Join(clientHome, clientConfig.Storage.Path))
	if err != nil {
		logger.Fatal("Failed to open the local profile store", log.Error(err))
	}
	defer localStore.Close()

	client := httpclient.NewClient(clientConfig.Backend)
	profileProvider := provider.NewProfileProvider(localStore, client)
	reconciler := profileProvider.GetReconciler()
	catalogs := catalogService.NewCatalogService(client,
		time.Duration(clientConfig.Catalog.CacheTTLMinutes)*time.Minute)
	news := newsService.NewNewsService(client)

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(clientConfig.Backend.TimeoutSeconds)*time.Second)
	defer cancel()

	switch flag.Arg(0) {
	case "register":
		runRegister(ctx, clientConfig, profileProvider.GetRemoteService(), reconciler, catalogs)
	case "signin":
		runSignIn(ctx, profileProvider.GetRemoteService(), reconciler)
	case "signout":
		if err := reconciler.SignOut(ctx); err != nil {
			logger.Fatal("Sign out failed", log.Error(err))
		}
		fmt.Println("Signed out.")
	case "news":
		runNews(ctx, news)
	case "badge":
		runBadge(ctx, localStore, reconciler)
	case "catalog":
		runCatalog(ctx, catalogs)
	default:
		runStatus(ctx, reconciler)
	}
}

// runStatus reconciles the local record against the backend and prints the
// resulting session.
func runStatus(ctx context.Context, reconciler *profileService.Reconciler) {

	session := reconciler.Reconcile(ctx)
	fmt.Printf("status: %s (%s)\n", session.Status, profileService.StatusMessageKey(session.Status))
	if session.Identity != nil {
		fmt.Printf("member: %s / %s <%s>\n",
			session.Identity.EnglishName, session.Identity.ArabicName, session.Identity.Phone)
	}
}

// runRegister submits a new registration, or updates the existing one when a
// record is already present locally.
func runRegister(ctx context.Context, clientConfig *config.Config,
	remote *profileService.RemoteService, reconciler *profileService.Reconciler,
	catalogs *catalogService.CatalogService) {

	logger := log.GetLogger()
	branches, err := catalogs.Branches(ctx)
	if err != nil {
		logger.Warn("Branch catalog unavailable, skipping branch validation", log.Error(err))
	}

	form := registrationService.FromIdentity(reconciler.Reconcile(ctx).Identity)
	form.ArabicName = readLine("Name (Arabic): ")
	form.EnglishName = readLine("Name (English): ")
	form.Phone = readLine("Phone number (+ country code): ")
	form.Role = readLine("Role (STUDENT/TEACHER/ADMIN): ")
	form.BranchID = readLine("Branch: ")
	form.Languages = []profileModel.LanguageProficiency{{
		Language: readLine("Language: "),
		Level:    readLine("Level: "),
	}}

	forms := registrationService.NewFormService(remote, reconciler, clientConfig.Registration)
	session, err := forms.Submit(ctx, form, branches)
	if err != nil {
		logger.Fatal("Registration failed", log.Error(err))
	}
	fmt.Printf("status: %s\n", session.Status)
}

func runSignIn(ctx context.Context, remote *profileService.RemoteService, reconciler *profileService.Reconciler) {

	flow := authService.NewFlow(remote, reconciler)
	logger := log.GetLogger()

	flow.PhoneChanged(readLine("Phone number (+ country code): "))
	if err := flow.SubmitPhone(ctx); err != nil {
		logger.Fatal("Failed to send the verification code", log.Error(err))
	}

	flow.EnterCode(readLine("Verification code: "))
	session, err := flow.SubmitCode(ctx)
	if err != nil {
		logger.Fatal("Code verification failed", log.Error(err))
	}
	fmt.Printf("status: %s\n", session.Status)
}

func runNews(ctx context.Context, news *newsService.NewsService) {

	items, err := news.Latest(ctx)
	if err != nil {
		log.GetLogger().Fatal("Failed to fetch the news feed", log.Error(err))
	}
	if len(items) == 0 {
		fmt.Println("No announcements.")
		return
	}
	for _, item := range items {
		fmt.Printf("%s  %s\n", item.CreatedAt.Format("2006-01-02"), item.Title)
	}
}

func runBadge(ctx context.Context, localStore *store.Store, reconciler *profileService.Reconciler) {

	logger := log.GetLogger()
	deviceID, err := localStore.DeviceID(ctx)
	if err != nil {
		logger.Fatal("Failed to resolve the device identifier", log.Error(err))
	}

	session := reconciler.Reconcile(ctx)
	if session.Status != profileModel.StatusApproved {
		fmt.Printf("status: %s, no badge available\n", session.Status)
		return
	}

	badges := badgeService.NewBadgeService(deviceID)
	token, err := badges.Issue(session.Identity)
	if err != nil {
		logger.Fatal("Badge issuance failed", log.Error(err))
	}
	fmt.Println(token)
}

func runCatalog(ctx context.Context, catalogs *catalogService.CatalogService) {

	logger := log.GetLogger()
	languages, err := catalogs.Languages(ctx)
	if err != nil {
		logger.Fatal("Failed to fetch the language catalog", log.Error(err))
	}
	branches, err := catalogs.Branches(ctx)
	if err != nil {
		logger.Fatal("Failed to fetch the branch catalog", log.Error(err))
	}

	fmt.Println("languages:")
	for _, language := range languages {
		fmt.Printf("  %s (%s), %d levels\n", language.Label.En, language.ID, len(language.Levels))
	}
	fmt.Println("branches:")
	for _, branch := range branches {
		fmt.Printf("  %s (%s)\n", branch.Name.En, branch.ID)
	}
}

func readLine(prompt string) string {
	fmt.Print(prompt)
	var value string
	_, _ = fmt.Scanln(&value)
	return value
}

func getClientHome() string {

	clientHomeFlag := flag.String("clientHome", "", "Path to registration client home directory")
	flag.Parse()

	if *clientHomeFlag != "" {
		return *clientHomeFlag
	}
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get current working directory: %v\n", err)
		os.Exit(1)
	}
	return dir
}
